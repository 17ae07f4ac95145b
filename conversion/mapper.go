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
	"github.com/FabianWe/elaxioms"
)

// MapAxiom converts a parsed axiom to its relationship form.
//
// SubClassOf and EquivalentClasses axioms are anchored on the side that is a
// named class, the other side is expanded into relationships: named class
// conjuncts become is-a relationships, restrictions on the role group
// property become one group each (numbered in order of appearance starting
// at 1), all other restrictions become ungrouped relationships.
// A SubObjectPropertyOf axiom without property chain is treated like
// SubClassOf(:r :s).
//
// Transitive and reflexive property declarations and property chains return
// an Unsupported result and no error.
func MapAxiom(axiom elaxioms.Axiom) (Result, error) {
	switch t := axiom.(type) {
	case *elaxioms.SubClassOf:
		rep, err := mapClassAxiom(t.Sub, t.Super, true)
		if err != nil {
			return Result{}, err
		}
		return supported(t.Kind(), rep), nil
	case *elaxioms.EquivalentClasses:
		rep, err := mapClassAxiom(t.Left, t.Right, false)
		if err != nil {
			return Result{}, err
		}
		return supported(t.Kind(), rep), nil
	case *elaxioms.SubObjectPropertyOf:
		sub, isNamed := t.Sub.(elaxioms.NamedEntity)
		if !isNamed {
			return unsupported(t.Kind()), nil
		}
		rep := elaxioms.NewAxiomRepresentation(true)
		rep.SetLeftHandSideNamedConcept(sub.ID())
		rep.RightHandSideRelationships = elaxioms.GroupRelationships(
			elaxioms.NewRelationship(elaxioms.IsA, t.Super.ID()))
		return supported(t.Kind(), rep), nil
	case *elaxioms.TransitiveObjectProperty, *elaxioms.ReflexiveObjectProperty:
		return unsupported(axiom.Kind()), nil
	default:
		return Result{}, newConversionError(axiom.String(), ErrUnsupportedShape, "unknown axiom type %T", axiom)
	}
}

func mapClassAxiom(left, right elaxioms.Expression, primitive bool) (*elaxioms.AxiomRepresentation, error) {
	rep := elaxioms.NewAxiomRepresentation(primitive)
	if named, isNamed := left.(elaxioms.NamedEntity); isNamed {
		rels, err := expandExpression(right)
		if err != nil {
			return nil, err
		}
		rep.SetLeftHandSideNamedConcept(named.ID())
		rep.RightHandSideRelationships = rels
		return rep, nil
	}
	if named, isNamed := right.(elaxioms.NamedEntity); isNamed {
		rels, err := expandExpression(left)
		if err != nil {
			return nil, err
		}
		rep.LeftHandSideRelationships = rels
		rep.SetRightHandSideNamedConcept(named.ID())
		return rep, nil
	}
	return nil, newConversionError(left.String(), ErrAmbiguousSides,
		"neither side is a named class")
}

// expandExpression turns a class expression into relationships.
func expandExpression(c elaxioms.Expression) (elaxioms.RelationshipGroups, error) {
	groups := make(elaxioms.RelationshipGroups)
	nextGroup := 1
	for _, conjunct := range elaxioms.Conjuncts(c) {
		switch t := conjunct.(type) {
		case elaxioms.NamedEntity:
			groups.Add(elaxioms.NewRelationship(elaxioms.IsA, t.ID()))
		case *elaxioms.ObjectSomeValuesFrom:
			if t.Property.ID() != elaxioms.RoleGroup {
				r, err := attributeRelationship(t, 0)
				if err != nil {
					return nil, err
				}
				groups.Add(r)
				continue
			}
			for _, inner := range elaxioms.Conjuncts(t.Filler) {
				r, err := attributeRelationship(inner, nextGroup)
				if err != nil {
					return nil, err
				}
				groups.Add(r)
			}
			nextGroup++
		default:
			return nil, newConversionError(conjunct.String(), ErrUnsupportedShape,
				"conjunct is neither a named class nor an existential restriction")
		}
	}
	return groups, nil
}

// attributeRelationship converts ∃r.A with a named filler A.
func attributeRelationship(e elaxioms.Expression, group int) (elaxioms.Relationship, error) {
	existential, isExistential := e.(*elaxioms.ObjectSomeValuesFrom)
	if !isExistential {
		return elaxioms.Relationship{}, newConversionError(e.String(), ErrUnsupportedShape,
			"role group member is not an existential restriction")
	}
	destination, isNamed := existential.Filler.(elaxioms.NamedEntity)
	if !isNamed {
		return elaxioms.Relationship{}, newConversionError(e.String(), ErrUnsupportedShape,
			"restriction filler is not a named class")
	}
	if existential.Property.ID() == elaxioms.IsA {
		return elaxioms.Relationship{}, newConversionError(e.String(), ErrUnsupportedShape,
			"is-a can't be used as restriction property")
	}
	return elaxioms.NewGroupedRelationship(group, existential.Property.ID(), destination.ID()), nil
}
