// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"fmt"

	"github.com/ilhamster/mtlweaken/pkg/mtl"
)

// Parser is a recursive-descent parser for the §6 formula surface
// syntax, one token of lookahead.
type Parser struct {
	lex *lexer
	cur token
}

// Parse parses a complete formula from input, erroring if trailing
// input remains after a well-formed formula.
func Parse(input string) (mtl.Formula, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w: trailing input at %q", ErrUnexpectedToken, p.cur)
	}
	return f, nil
}

func newParser(input string) (*Parser, error) {
	p := &Parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) expect(k tokenKind) (token, error) {
	if p.cur.kind != k {
		if p.cur.kind == tokEOF {
			return token{}, fmt.Errorf("%w: expected token kind %d", ErrUnexpectedEOF, k)
		}
		return token{}, fmt.Errorf("%w: %q", ErrUnexpectedToken, p.cur)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

// parseImplies handles right-associative `->`, the loosest-binding
// operator.
func (p *Parser) parseImplies() (mtl.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokArrow {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return mtl.Implies{Left: left, Right: right}, nil
}

func (p *Parser) parseOr() (mtl.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = mtl.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (mtl.Formula, error) {
	left, err := p.parseUntilRelease()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUntilRelease()
		if err != nil {
			return nil, err
		}
		left = mtl.And{Left: left, Right: right}
	}
	return left, nil
}

// parseUntilRelease handles left-associative `U`/`R`, each with an
// optional interval, tighter-binding than `&`/`|`/`->`.
func (p *Parser) parseUntilRelease() (mtl.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokUntil || p.cur.kind == tokRelease {
		isUntil := p.cur.kind == tokUntil
		if err := p.advance(); err != nil {
			return nil, err
		}
		iv, err := p.parseOptionalInterval()
		if err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if isUntil {
			left = mtl.Until{Left: left, Right: right, Interval: iv}
		} else {
			left = mtl.Release{Left: left, Right: right, Interval: iv}
		}
	}
	return left, nil
}

// parseUnary handles `!`, `X`, and `F`/`G` (each optionally followed by
// an interval), the tightest-binding constructs.
func (p *Parser) parseUnary() (mtl.Formula, error) {
	switch p.cur.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mtl.Not{Operand: operand}, nil

	case tokNext:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mtl.Next{Operand: operand}, nil

	case tokEventually:
		if err := p.advance(); err != nil {
			return nil, err
		}
		iv, err := p.parseOptionalInterval()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mtl.Eventually{Operand: operand, Interval: iv}, nil

	case tokAlways:
		if err := p.advance(); err != nil {
			return nil, err
		}
		iv, err := p.parseOptionalInterval()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mtl.Always{Operand: operand, Interval: iv}, nil

	default:
		return p.parseAtom()
	}
}

func (p *Parser) parseAtom() (mtl.Formula, error) {
	switch p.cur.kind {
	case tokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return mtl.True{}, nil
	case tokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return mtl.False{}, nil
	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return mtl.Prop{Name: name}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return f, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: expected a formula", ErrUnexpectedEOF)
	default:
		return nil, fmt.Errorf("%w: %q: expected a formula", ErrUnexpectedToken, p.cur)
	}
}

// parseOptionalInterval parses `[lo,hi]` if present, otherwise returns
// mtl.Default (the implicit `[0,∞]`).
func (p *Parser) parseOptionalInterval() (mtl.Interval, error) {
	if p.cur.kind != tokLBracket {
		return mtl.Default, nil
	}
	if err := p.advance(); err != nil {
		return mtl.Interval{}, err
	}
	loTok, err := p.expect(tokNumber)
	if err != nil {
		return mtl.Interval{}, err
	}
	if _, err := p.expect(tokComma); err != nil {
		return mtl.Interval{}, err
	}
	hi := mtl.Unbounded
	if p.cur.kind == tokInfinity {
		if err := p.advance(); err != nil {
			return mtl.Interval{}, err
		}
	} else {
		hiTok, err := p.expect(tokNumber)
		if err != nil {
			return mtl.Interval{}, err
		}
		hi = hiTok.num
	}
	if _, err := p.expect(tokRBracket); err != nil {
		return mtl.Interval{}, err
	}
	return mtl.NewInterval(loTok.num, hi)
}
