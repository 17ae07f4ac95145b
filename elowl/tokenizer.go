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
	"fmt"
	"io"
	"regexp"
)

// AxiomToken is the type of a lexical element of the functional syntax.
type AxiomToken int

const (
	ErrorToken AxiomToken = iota
	EOF
	WS
	Keyword
	EntityRef
	OpenBrace
	CloseBrace
)

// A human readable version of the token name.
func (t AxiomToken) String() string {
	switch t {
	case ErrorToken:
		return "ERROR"
	case EOF:
		return "EOF"
	case WS:
		return "WS"
	case Keyword:
		return "KEYWORD"
	case EntityRef:
		return "ENTITY_REF"
	case OpenBrace:
		return "("
	case CloseBrace:
		return ")"
	default:
		return fmt.Sprintf("UNKNOWN (%d)", t)
	}
}

// A match defines the token type of the match, the string sequence with
// which it was matched and the byte offset of the sequence in the input.
// Spaced is true if the token directly follows a WS token.
type TokenMatch struct {
	Token  AxiomToken
	Seq    string
	Pos    int
	Spaced bool
}

/*
Tokenizer is an interface for types that return a sequence of tokens.
Each time before you use a tokenizer you *must* call its Init method. The
tokenizer should also be able to handle subsequent calls with different
readers, i.e. you can reuse it for tokenizing another axiom.
After that the tokenizer returns the next Token by calling NextToken.
An error != nil is only returned if reading the input failed. If a syntax
error occurred the error is nil but the token is ErrorToken.
*/
type Tokenizer interface {
	Init(r io.Reader) error
	NextToken() (*TokenMatch, error)
}

// A token can be matched with a regex. This type stores the regex for the
// token and the type of the token matched by this regex.
type tokenRegexMatcher struct {
	token AxiomToken
	regex *regexp.Regexp
}

// The matchers are compiled once and shared by all tokenizers, they're never
// modified after package initialization.
var defaultMatchers = []*tokenRegexMatcher{
	{token: WS, regex: regexp.MustCompile(`^\s+`)},
	{token: Keyword, regex: regexp.MustCompile(`^[A-Za-z]+`)},
	{token: EntityRef, regex: regexp.MustCompile(`^:[0-9]+`)},
	{token: OpenBrace, regex: regexp.MustCompile(`^\(`)},
	{token: CloseBrace, regex: regexp.MustCompile(`^\)`)},
}

// RegexTokenizer tokenizes a reader by trying a list of regexes, the first
// that matches is the next token. Implements the Tokenizer interface.
type RegexTokenizer struct {
	regexes []*tokenRegexMatcher
	s       string
	pos     int
	afterWS bool
}

// NewRegexTokenizer returns a new tokenizer for the axiom grammar.
func NewRegexTokenizer() *RegexTokenizer {
	return &RegexTokenizer{regexes: defaultMatchers}
}

func (t *RegexTokenizer) Init(r io.Reader) error {
	allContent, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	t.s = string(allContent)
	t.pos = 0
	t.afterWS = false
	return nil
}

func (t *RegexTokenizer) NextToken() (*TokenMatch, error) {
	if t.s == "" {
		return &TokenMatch{Token: EOF, Seq: "", Pos: t.pos, Spaced: t.afterWS}, nil
	}
	token := ErrorToken
	seq := t.s
	for _, info := range t.regexes {
		if match := info.regex.FindString(t.s); match != "" {
			token = info.token
			seq = match
			break
		}
	}
	res := &TokenMatch{Token: token, Seq: seq, Pos: t.pos, Spaced: t.afterWS}
	if token != ErrorToken {
		t.s = t.s[len(seq):]
		t.pos += len(seq)
		t.afterWS = token == WS
	}
	return res, nil
}
