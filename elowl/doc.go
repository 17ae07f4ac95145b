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

/*
Package elowl builds a bridge between OWL axioms written in functional syntax
and the expression model of package elaxioms.

Parsing Input

Only the fragment of the functional syntax used in the logical definitions of
SNOMED CT is supported: SubClassOf and EquivalentClasses axioms over
intersections of named classes and existential restrictions,
SubObjectPropertyOf (with an optional property chain of length two) and
transitive / reflexive property declarations. All entities are written as a
colon followed by the numeric identifier, for example

    EquivalentClasses(:10002003 ObjectIntersectionOf(:116175006 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:260686004 :129304002))))

Prefixes, full IRIs, annotations and all other OWL constructs are rejected
with a *ParseError.

The tokenizer is a hand-written list of regexes, the first one that matches is
the next token. Tokenization and parsing are defined by their own types, the
Tokenizer interface makes it possible to plug in another tokenizer. The
recursive descent Parser builds the expression tree directly, there is no
intermediate syntax tree: the grammar is small enough for that.

Whitespace between tokens is insignificant. The canonical rendering of an
expression (see the String methods in elaxioms) always separates arguments
with exactly one space.
*/
package elowl
