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

package elaxioms

import (
	"fmt"
	"strings"
)

//// Class and property expressions ////

// Expression is the interface for all nodes of a parsed axiom.
// Each node renders itself in OWL functional syntax with String, the
// rendering is the canonical form: entity references are written as ":id",
// sibling arguments are separated by exactly one space.
type Expression interface {
	String() string
}

// NamedEntity is a reference to a named class or object property, identified
// by its SNOMED CT identifier.
type NamedEntity int64

// NewNamedEntity returns a new NamedEntity.
func NewNamedEntity(id int64) NamedEntity {
	return NamedEntity(id)
}

// ID returns the identifier as int64.
func (entity NamedEntity) ID() int64 {
	return int64(entity)
}

func (entity NamedEntity) String() string {
	return fmt.Sprintf(":%d", int64(entity))
}

// ObjectIntersection is a concept of the form C1 ⊓ ... ⊓ Cn.
// An intersection never contains another intersection as a direct operand,
// NewObjectIntersection takes care of that.
type ObjectIntersection struct {
	Operands []Expression
}

// NewObjectIntersection returns a new intersection of the given operands.
// Operands that are intersections themselves are flattened into the result,
// the order of the operands is retained.
func NewObjectIntersection(operands ...Expression) *ObjectIntersection {
	flat := make([]Expression, 0, len(operands))
	for _, op := range operands {
		if inner, isIntersection := op.(*ObjectIntersection); isIntersection {
			flat = append(flat, inner.Operands...)
		} else {
			flat = append(flat, op)
		}
	}
	return &ObjectIntersection{Operands: flat}
}

func (intersection *ObjectIntersection) String() string {
	return fmt.Sprintf("ObjectIntersectionOf(%s)", joinExpressions(intersection.Operands))
}

// ObjectSomeValuesFrom is an existential restriction of the form ∃r.C.
type ObjectSomeValuesFrom struct {
	Property NamedEntity
	Filler   Expression
}

// NewObjectSomeValuesFrom returns a new existential restriction ∃r.C.
func NewObjectSomeValuesFrom(r NamedEntity, c Expression) *ObjectSomeValuesFrom {
	return &ObjectSomeValuesFrom{Property: r, Filler: c}
}

func (existential *ObjectSomeValuesFrom) String() string {
	return fmt.Sprintf("ObjectSomeValuesFrom(%v %v)", existential.Property, existential.Filler)
}

// ObjectPropertyChain is a chain of the form r1 o ... o rk.
type ObjectPropertyChain struct {
	Properties []NamedEntity
}

// NewObjectPropertyChain returns a new property chain r1 o ... o rk.
func NewObjectPropertyChain(properties ...NamedEntity) *ObjectPropertyChain {
	return &ObjectPropertyChain{Properties: properties}
}

func (chain *ObjectPropertyChain) String() string {
	strs := make([]string, len(chain.Properties))
	for i, r := range chain.Properties {
		strs[i] = r.String()
	}
	return fmt.Sprintf("ObjectPropertyChain(%s)", strings.Join(strs, " "))
}

//// Axioms ////

// AxiomKind identifies the top-level keyword of an axiom.
type AxiomKind int

const (
	SubClassOfKind AxiomKind = iota
	EquivalentClassesKind
	SubObjectPropertyOfKind
	TransitiveObjectPropertyKind
	ReflexiveObjectPropertyKind
)

// Keyword returns the functional syntax keyword of the axiom kind.
func (kind AxiomKind) Keyword() string {
	switch kind {
	case SubClassOfKind:
		return "SubClassOf"
	case EquivalentClassesKind:
		return "EquivalentClasses"
	case SubObjectPropertyOfKind:
		return "SubObjectPropertyOf"
	case TransitiveObjectPropertyKind:
		return "TransitiveObjectProperty"
	case ReflexiveObjectPropertyKind:
		return "ReflexiveObjectProperty"
	default:
		return fmt.Sprintf("UNKNOWN (%d)", kind)
	}
}

func (kind AxiomKind) String() string {
	return kind.Keyword()
}

// Axiom is implemented by all top-level statements.
type Axiom interface {
	Expression
	Kind() AxiomKind
}

// SubClassOf is a general concept inclusion of the form C ⊑ D.
type SubClassOf struct {
	Sub, Super Expression
}

// NewSubClassOf returns a new inclusion C ⊑ D.
func NewSubClassOf(c, d Expression) *SubClassOf {
	return &SubClassOf{Sub: c, Super: d}
}

func (axiom *SubClassOf) Kind() AxiomKind {
	return SubClassOfKind
}

func (axiom *SubClassOf) String() string {
	return fmt.Sprintf("SubClassOf(%v %v)", axiom.Sub, axiom.Super)
}

// EquivalentClasses is an equivalence of the form C ≡ D.
type EquivalentClasses struct {
	Left, Right Expression
}

// NewEquivalentClasses returns a new equivalence C ≡ D.
func NewEquivalentClasses(c, d Expression) *EquivalentClasses {
	return &EquivalentClasses{Left: c, Right: d}
}

func (axiom *EquivalentClasses) Kind() AxiomKind {
	return EquivalentClassesKind
}

func (axiom *EquivalentClasses) String() string {
	return fmt.Sprintf("EquivalentClasses(%v %v)", axiom.Left, axiom.Right)
}

// SubObjectPropertyOf is a role inclusion r ⊑ s or r1 o r2 ⊑ s.
// Sub is either a NamedEntity or an *ObjectPropertyChain.
type SubObjectPropertyOf struct {
	Sub   Expression
	Super NamedEntity
}

// NewSubObjectPropertyOf returns a new role inclusion.
func NewSubObjectPropertyOf(sub Expression, super NamedEntity) *SubObjectPropertyOf {
	return &SubObjectPropertyOf{Sub: sub, Super: super}
}

func (axiom *SubObjectPropertyOf) Kind() AxiomKind {
	return SubObjectPropertyOfKind
}

// HasChain is true if the sub property is a property chain.
func (axiom *SubObjectPropertyOf) HasChain() bool {
	_, isChain := axiom.Sub.(*ObjectPropertyChain)
	return isChain
}

func (axiom *SubObjectPropertyOf) String() string {
	return fmt.Sprintf("SubObjectPropertyOf(%v %v)", axiom.Sub, axiom.Super)
}

// TransitiveObjectProperty declares r o r ⊑ r.
type TransitiveObjectProperty struct {
	Property NamedEntity
}

// NewTransitiveObjectProperty returns a new transitivity declaration.
func NewTransitiveObjectProperty(r NamedEntity) *TransitiveObjectProperty {
	return &TransitiveObjectProperty{Property: r}
}

func (axiom *TransitiveObjectProperty) Kind() AxiomKind {
	return TransitiveObjectPropertyKind
}

func (axiom *TransitiveObjectProperty) String() string {
	return fmt.Sprintf("TransitiveObjectProperty(%v)", axiom.Property)
}

// ReflexiveObjectProperty declares that r is reflexive.
type ReflexiveObjectProperty struct {
	Property NamedEntity
}

// NewReflexiveObjectProperty returns a new reflexivity declaration.
func NewReflexiveObjectProperty(r NamedEntity) *ReflexiveObjectProperty {
	return &ReflexiveObjectProperty{Property: r}
}

func (axiom *ReflexiveObjectProperty) Kind() AxiomKind {
	return ReflexiveObjectPropertyKind
}

func (axiom *ReflexiveObjectProperty) String() string {
	return fmt.Sprintf("ReflexiveObjectProperty(%v)", axiom.Property)
}

// Conjuncts returns the operands of c if c is an intersection, otherwise a
// slice containing only c.
func Conjuncts(c Expression) []Expression {
	if intersection, isIntersection := c.(*ObjectIntersection); isIntersection {
		return intersection.Operands
	}
	return []Expression{c}
}

// Conjoin is the inverse of Conjuncts: it returns nil for no operands, the
// operand itself for exactly one operand and an intersection otherwise.
func Conjoin(operands []Expression) Expression {
	switch len(operands) {
	case 0:
		return nil
	case 1:
		return operands[0]
	default:
		return NewObjectIntersection(operands...)
	}
}

func joinExpressions(expressions []Expression) string {
	strs := make([]string, len(expressions))
	for i, e := range expressions {
		strs[i] = e.String()
	}
	return strings.Join(strs, " ")
}
