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
	"fmt"

	"github.com/FabianWe/elaxioms"
)

// Outcome distinguishes the two successful results of a conversion.
type Outcome int

const (
	// Unsupported means the axiom is valid but has no relationship form:
	// transitive and reflexive property declarations and property chains.
	Unsupported Outcome = iota
	// Supported means the Representation is set.
	Supported
)

func (o Outcome) String() string {
	switch o {
	case Unsupported:
		return "unsupported"
	case Supported:
		return "supported"
	default:
		return fmt.Sprintf("UNKNOWN (%d)", o)
	}
}

// Result is the result of converting an axiom to relationships.
type Result struct {
	Outcome        Outcome
	Kind           elaxioms.AxiomKind
	Representation *elaxioms.AxiomRepresentation
}

func supported(kind elaxioms.AxiomKind, rep *elaxioms.AxiomRepresentation) Result {
	return Result{Outcome: Supported, Kind: kind, Representation: rep}
}

func unsupported(kind elaxioms.AxiomKind) Result {
	return Result{Outcome: Unsupported, Kind: kind}
}

// Supported is true if the result carries a representation.
func (res Result) Supported() bool {
	return res.Outcome == Supported
}
