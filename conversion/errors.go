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

package conversion

import (
	"errors"
	"fmt"
)

// Errors wrapped by ConversionError, use errors.Is to classify a failure.
var (
	// ErrAmbiguousSides is returned if no side of an axiom can be anchored on
	// a single named concept.
	ErrAmbiguousSides = errors.New("ambiguous side assignment")

	// ErrUnsupportedShape is returned for conjuncts that have no
	// relationship equivalent, for example nested restrictions.
	ErrUnsupportedShape = errors.New("unsupported expression shape")

	// ErrAnchorMismatch is returned if the named concept of an axiom differs
	// from the expected concept.
	ErrAnchorMismatch = errors.New("named concept does not match expected concept")

	// ErrEmptyExpression is returned if a side has nothing to render.
	ErrEmptyExpression = errors.New("empty class expression")

	// ErrGroupConflict is returned if the group membership of a
	// relationship can't be expressed in the grammar.
	ErrGroupConflict = errors.New("conflicting group membership")

	// ErrInvalidRelationship is returned for relationships with
	// non-positive identifiers.
	ErrInvalidRelationship = errors.New("invalid relationship")
)

// ConversionError is returned by all conversion operations. Err is either a
// *elowl.ParseError or wraps one of the Err* values of this package.
type ConversionError struct {
	// Axiom is the input text, empty when converting relationships.
	Axiom string
	// Fragment is the part of the input that caused the error, if known.
	Fragment string
	Err      error
}

func newConversionError(fragment string, err error, format string, args ...interface{}) *ConversionError {
	if format != "" {
		err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
	return &ConversionError{Fragment: fragment, Err: err}
}

func (err *ConversionError) Error() string {
	msg := err.Err.Error()
	if err.Fragment != "" {
		msg = fmt.Sprintf("%s in %s", msg, err.Fragment)
	}
	if err.Axiom != "" {
		return fmt.Sprintf("cannot convert axiom %q: %s", err.Axiom, msg)
	}
	return "cannot convert relationships to axiom: " + msg
}

func (err *ConversionError) Unwrap() error {
	return err.Err
}
