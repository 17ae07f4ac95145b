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

// Layout is the rendering order of a relationship map after the never-group
// policy has been applied. Group numbers are positional: Groups[i] holds the
// relationships of group i + 1.
type Layout struct {
	Ungrouped []elaxioms.Relationship
	Groups    [][]elaxioms.Relationship
	// Moved contains the relationships of never-group attributes that were
	// placed in a non-zero group, in their original form.
	Moved []elaxioms.Relationship
}

// NormalizeGroups applies the never-group policy and renumbers the groups.
// Groups are visited in ascending order, relationships keep their order
// inside a group. Never-group attributes are appended to the ungrouped
// relationships, groups left empty are dropped and the remaining groups are
// numbered 1..N without gaps.
func NormalizeGroups(groups elaxioms.RelationshipGroups, neverGroup elaxioms.IDSet) (*Layout, error) {
	layout := &Layout{}
	for _, group := range elaxioms.SortedGroups(groups) {
		if group < 0 {
			return nil, newConversionError("", ErrGroupConflict, "negative group %d", group)
		}
		var members []elaxioms.Relationship
		for _, r := range groups[group] {
			if r.Group != group {
				return nil, newConversionError(r.String(), ErrGroupConflict,
					"relationship of group %d listed under group %d", r.Group, group)
			}
			if r.TypeID <= 0 || r.DestinationID <= 0 {
				return nil, newConversionError(r.String(), ErrInvalidRelationship,
					"identifiers must be positive")
			}
			switch {
			case group == 0:
				layout.Ungrouped = append(layout.Ungrouped, r)
			case neverGroup.Contains(r.TypeID):
				layout.Moved = append(layout.Moved, r)
				layout.Ungrouped = append(layout.Ungrouped, elaxioms.NewRelationship(r.TypeID, r.DestinationID))
			case r.IsA():
				return nil, newConversionError(r.String(), ErrGroupConflict,
					"is-a relationships can't be role grouped")
			default:
				members = append(members, r)
			}
		}
		if len(members) == 0 {
			continue
		}
		number := len(layout.Groups) + 1
		renumbered := make([]elaxioms.Relationship, len(members))
		for i, r := range members {
			renumbered[i] = elaxioms.NewGroupedRelationship(number, r.TypeID, r.DestinationID)
		}
		layout.Groups = append(layout.Groups, renumbered)
	}
	return layout, nil
}

// Relationships returns the normalized relationship map.
func (layout *Layout) Relationships() elaxioms.RelationshipGroups {
	res := make(elaxioms.RelationshipGroups)
	for _, r := range layout.Ungrouped {
		res.Add(r)
	}
	for _, group := range layout.Groups {
		for _, r := range group {
			res.Add(r)
		}
	}
	return res
}

// ClassExpression renders the layout: ungrouped relationships first (is-a as
// named class, everything else as restriction), followed by one role group
// restriction per group.
func (layout *Layout) ClassExpression() (elaxioms.Expression, error) {
	conjuncts := make([]elaxioms.Expression, 0, len(layout.Ungrouped)+len(layout.Groups))
	for _, r := range layout.Ungrouped {
		conjuncts = append(conjuncts, relationshipExpression(r))
	}
	for _, group := range layout.Groups {
		inner := make([]elaxioms.Expression, len(group))
		for i, r := range group {
			inner[i] = relationshipExpression(r)
		}
		conjuncts = append(conjuncts, elaxioms.NewObjectSomeValuesFrom(
			elaxioms.NamedEntity(elaxioms.RoleGroup), elaxioms.Conjoin(inner)))
	}
	if len(conjuncts) == 0 {
		return nil, newConversionError("", ErrEmptyExpression, "no relationships to render")
	}
	return elaxioms.Conjoin(conjuncts), nil
}

func relationshipExpression(r elaxioms.Relationship) elaxioms.Expression {
	if r.IsA() {
		return elaxioms.NamedEntity(r.DestinationID)
	}
	return elaxioms.NewObjectSomeValuesFrom(elaxioms.NamedEntity(r.TypeID), elaxioms.NamedEntity(r.DestinationID))
}

// serializer renders representations, it only reads its never-group set.
type serializer struct {
	neverGroup elaxioms.IDSet
	// onMove is called for every never-group relationship forced to group 0.
	onMove func(r elaxioms.Relationship)
}

func (s *serializer) axiom(rep *elaxioms.AxiomRepresentation) (elaxioms.Axiom, error) {
	if rep == nil {
		return nil, newConversionError("", ErrEmptyExpression, "no representation given")
	}
	if rep.LeftHandSideNamedConcept == nil && rep.RightHandSideNamedConcept == nil {
		return nil, newConversionError("", ErrAmbiguousSides, "neither side carries a named concept")
	}
	left, err := s.side("left", rep.LeftHandSideNamedConcept, rep.LeftHandSideRelationships)
	if err != nil {
		return nil, err
	}
	right, err := s.side("right", rep.RightHandSideNamedConcept, rep.RightHandSideRelationships)
	if err != nil {
		return nil, err
	}
	if rep.Primitive {
		return elaxioms.NewSubClassOf(left, right), nil
	}
	return elaxioms.NewEquivalentClasses(left, right), nil
}

func (s *serializer) side(name string, named *int64, groups elaxioms.RelationshipGroups) (elaxioms.Expression, error) {
	hasRelationships := groups.Len() > 0
	switch {
	case named != nil && *named <= 0:
		return nil, newConversionError("", ErrInvalidRelationship,
			"%s named concept %d is not a positive identifier", name, *named)
	case named != nil && hasRelationships:
		// the only form that is both is the identity A ⊑ A
		if rels := groups[0]; groups.Len() == 1 && len(rels) == 1 && rels[0].IsA() && rels[0].DestinationID == *named {
			return elaxioms.NamedEntity(*named), nil
		}
		return nil, newConversionError("", ErrAmbiguousSides,
			"%s side carries both a named concept and relationships", name)
	case named != nil:
		return elaxioms.NamedEntity(*named), nil
	case hasRelationships:
		layout, err := NormalizeGroups(groups, s.neverGroup)
		if err != nil {
			return nil, err
		}
		if s.onMove != nil {
			for _, r := range layout.Moved {
				s.onMove(r)
			}
		}
		return layout.ClassExpression()
	default:
		return nil, newConversionError("", ErrEmptyExpression, "%s side is empty", name)
	}
}
