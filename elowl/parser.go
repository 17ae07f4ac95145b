// The MIT License (MIT)

// Copyright (c) 2016, 2017 Fabian Wenzelmann

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package elowl

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FabianWe/elaxioms"
)

// Keywords of the supported functional syntax.
const (
	subClassOf               = "SubClassOf"
	equivalentClasses        = "EquivalentClasses"
	subObjectPropertyOf      = "SubObjectPropertyOf"
	transitiveObjectProperty = "TransitiveObjectProperty"
	reflexiveObjectProperty  = "ReflexiveObjectProperty"
	objectIntersectionOf     = "ObjectIntersectionOf"
	objectSomeValuesFrom     = "ObjectSomeValuesFrom"
	objectPropertyChain      = "ObjectPropertyChain"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("invalid axiom syntax")

// ParseError describes a token that does not fit the grammar.
type ParseError struct {
	// Pos is the byte offset of the offending token.
	Pos int
	// Seq is the text of the offending token, the remaining input for
	// tokenization errors.
	Seq      string
	Expected string
}

func (err *ParseError) Error() string {
	var got string
	switch {
	case err.Seq == "":
		got = "end of input"
	case len(err.Seq) > 100:
		got = fmt.Sprintf("%.100q...", err.Seq)
	default:
		got = fmt.Sprintf("%q", err.Seq)
	}
	return fmt.Sprintf("expected %s but got %s at offset %d", err.Expected, got, err.Pos)
}

func (err *ParseError) Unwrap() error {
	return ErrSyntax
}

// Parser is a recursive descent parser for the axiom grammar
//
//	axiom        := "SubClassOf(" classExpr classExpr ")"
//	              | "EquivalentClasses(" classExpr classExpr ")"
//	              | "SubObjectPropertyOf(" (entityRef | propertyChain) entityRef ")"
//	              | "TransitiveObjectProperty(" entityRef ")"
//	              | "ReflexiveObjectProperty(" entityRef ")"
//	classExpr    := entityRef | intersection | existential
//	intersection := "ObjectIntersectionOf(" classExpr classExpr+ ")"
//	existential  := "ObjectSomeValuesFrom(" entityRef classExpr ")"
//	propertyChain:= "ObjectPropertyChain(" entityRef entityRef ")"
//	entityRef    := ":" digits
//
// Sibling arguments must be separated by whitespace, a keyword must be
// followed directly by its opening brace. Any other whitespace between tokens
// is ignored. A Parser is not safe for concurrent
// use, create one parser per goroutine or use ParseAxiom.
type Parser struct {
	t      Tokenizer
	tokens []*TokenMatch
	next   int
}

// NewParser returns a parser that reads its tokens from t.
func NewParser(t Tokenizer) *Parser {
	return &Parser{t: t}
}

// ParseAxiom parses a single axiom with a new RegexTokenizer.
func ParseAxiom(s string) (elaxioms.Axiom, error) {
	return NewParser(NewRegexTokenizer()).Parse(strings.NewReader(s))
}

// Parse reads the whole input and returns the axiom it contains.
func (p *Parser) Parse(r io.Reader) (elaxioms.Axiom, error) {
	p.tokens = nil
	p.next = 0
	if err := p.t.Init(r); err != nil {
		return nil, fmt.Errorf("error while tokenization: %w", err)
	}
	if err := p.readAllTokens(); err != nil {
		return nil, err
	}
	axiom, err := p.parseAxiom()
	if err != nil {
		return nil, err
	}
	if tm := p.peek(); tm.Token != EOF {
		return nil, p.expectErr("end of input", tm)
	}
	return axiom, nil
}

func (p *Parser) readAllTokens() error {
	for {
		tm, err := p.t.NextToken()
		if err != nil {
			return err
		}
		switch tm.Token {
		default:
			p.tokens = append(p.tokens, tm)
		case WS:
			// ignore
		case EOF:
			p.tokens = append(p.tokens, tm)
			return nil
		case ErrorToken:
			return &ParseError{Pos: tm.Pos, Seq: tm.Seq, Expected: "a keyword, entity reference or parenthesis"}
		}
	}
}

// peek returns the next token without consuming it, the final EOF token is
// returned over and over again.
func (p *Parser) peek() *TokenMatch {
	if p.next >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.next]
}

func (p *Parser) consume() *TokenMatch {
	tm := p.peek()
	if p.next < len(p.tokens) {
		p.next++
	}
	return tm
}

func (p *Parser) expectErr(expected string, tm *TokenMatch) error {
	return &ParseError{Pos: tm.Pos, Seq: tm.Seq, Expected: expected}
}

func (p *Parser) handleToken(t AxiomToken) (*TokenMatch, error) {
	tm := p.peek()
	if tm.Token != t {
		return nil, p.expectErr(fmt.Sprintf("%v", t), tm)
	}
	return p.consume(), nil
}

// handleOpen consumes the keyword kw followed by an opening brace.
func (p *Parser) handleOpen(kw string) error {
	tm := p.peek()
	if tm.Token != Keyword || tm.Seq != kw {
		return p.expectErr(kw, tm)
	}
	p.consume()
	brace, err := p.handleToken(OpenBrace)
	if err != nil {
		return err
	}
	if brace.Spaced {
		return p.expectErr(fmt.Sprintf("( directly after %s", kw), brace)
	}
	return nil
}

// requireSeparator checks that the next argument of construct is separated
// from the previous one by whitespace. A closing brace or the end of input
// is left to the grammar rules.
func (p *Parser) requireSeparator(construct string) error {
	tm := p.peek()
	if tm.Spaced || tm.Token == CloseBrace || tm.Token == EOF {
		return nil
	}
	return p.expectErr(fmt.Sprintf("whitespace between arguments of %s", construct), tm)
}

func (p *Parser) handleClose(construct string) error {
	tm := p.peek()
	if tm.Token != CloseBrace {
		return p.expectErr(fmt.Sprintf(") closing %s", construct), tm)
	}
	p.consume()
	return nil
}

func (p *Parser) parseAxiom() (elaxioms.Axiom, error) {
	tm := p.peek()
	if tm.Token != Keyword {
		return nil, p.expectErr("axiom keyword", tm)
	}
	switch tm.Seq {
	case subClassOf, equivalentClasses:
		if err := p.handleOpen(tm.Seq); err != nil {
			return nil, err
		}
		c, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if err := p.requireSeparator(tm.Seq); err != nil {
			return nil, err
		}
		d, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if err := p.handleClose(tm.Seq); err != nil {
			return nil, err
		}
		if tm.Seq == subClassOf {
			return elaxioms.NewSubClassOf(c, d), nil
		}
		return elaxioms.NewEquivalentClasses(c, d), nil
	case subObjectPropertyOf:
		if err := p.handleOpen(tm.Seq); err != nil {
			return nil, err
		}
		var sub elaxioms.Expression
		if next := p.peek(); next.Token == Keyword {
			chain, err := p.parsePropertyChain()
			if err != nil {
				return nil, err
			}
			sub = chain
		} else {
			r, err := p.parseEntity()
			if err != nil {
				return nil, err
			}
			sub = r
		}
		if err := p.requireSeparator(tm.Seq); err != nil {
			return nil, err
		}
		super, err := p.parseEntity()
		if err != nil {
			return nil, err
		}
		if err := p.handleClose(tm.Seq); err != nil {
			return nil, err
		}
		return elaxioms.NewSubObjectPropertyOf(sub, super), nil
	case transitiveObjectProperty, reflexiveObjectProperty:
		if err := p.handleOpen(tm.Seq); err != nil {
			return nil, err
		}
		r, err := p.parseEntity()
		if err != nil {
			return nil, err
		}
		if err := p.handleClose(tm.Seq); err != nil {
			return nil, err
		}
		if tm.Seq == transitiveObjectProperty {
			return elaxioms.NewTransitiveObjectProperty(r), nil
		}
		return elaxioms.NewReflexiveObjectProperty(r), nil
	default:
		return nil, p.expectErr("axiom keyword", tm)
	}
}

func (p *Parser) parseClassExpression() (elaxioms.Expression, error) {
	tm := p.peek()
	switch {
	case tm.Token == EntityRef:
		return p.parseEntity()
	case tm.Token == Keyword && tm.Seq == objectIntersectionOf:
		return p.parseIntersection()
	case tm.Token == Keyword && tm.Seq == objectSomeValuesFrom:
		return p.parseExistential()
	default:
		return nil, p.expectErr("class expression", tm)
	}
}

func (p *Parser) parseIntersection() (elaxioms.Expression, error) {
	if err := p.handleOpen(objectIntersectionOf); err != nil {
		return nil, err
	}
	var operands []elaxioms.Expression
	for p.peek().Token != CloseBrace {
		if len(operands) > 0 {
			if err := p.requireSeparator(objectIntersectionOf); err != nil {
				return nil, err
			}
		}
		c, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, c)
	}
	if len(operands) < 2 {
		return nil, p.expectErr(fmt.Sprintf("at least two operands in %s", objectIntersectionOf), p.peek())
	}
	if err := p.handleClose(objectIntersectionOf); err != nil {
		return nil, err
	}
	return elaxioms.NewObjectIntersection(operands...), nil
}

func (p *Parser) parseExistential() (elaxioms.Expression, error) {
	if err := p.handleOpen(objectSomeValuesFrom); err != nil {
		return nil, err
	}
	r, err := p.parseEntity()
	if err != nil {
		return nil, err
	}
	if err := p.requireSeparator(objectSomeValuesFrom); err != nil {
		return nil, err
	}
	c, err := p.parseClassExpression()
	if err != nil {
		return nil, err
	}
	if err := p.handleClose(objectSomeValuesFrom); err != nil {
		return nil, err
	}
	return elaxioms.NewObjectSomeValuesFrom(r, c), nil
}

func (p *Parser) parsePropertyChain() (*elaxioms.ObjectPropertyChain, error) {
	if err := p.handleOpen(objectPropertyChain); err != nil {
		return nil, err
	}
	r1, err := p.parseEntity()
	if err != nil {
		return nil, err
	}
	if err := p.requireSeparator(objectPropertyChain); err != nil {
		return nil, err
	}
	r2, err := p.parseEntity()
	if err != nil {
		return nil, err
	}
	if err := p.handleClose(objectPropertyChain); err != nil {
		return nil, err
	}
	return elaxioms.NewObjectPropertyChain(r1, r2), nil
}

func (p *Parser) parseEntity() (elaxioms.NamedEntity, error) {
	tm, err := p.handleToken(EntityRef)
	if err != nil {
		return 0, err
	}
	digits := tm.Seq[1:]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, p.expectErr("identifier without leading zeros", tm)
	}
	id, convErr := strconv.ParseInt(digits, 10, 64)
	if convErr != nil || id <= 0 {
		return 0, p.expectErr("positive 64-bit identifier", tm)
	}
	return elaxioms.NewNamedEntity(id), nil
}
