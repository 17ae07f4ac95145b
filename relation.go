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

// Reserved SNOMED CT identifiers the conversion depends on.
const (
	// IsA is the attribute type of subsumption relationships.
	IsA int64 = 116680003

	// RoleGroup is the object property that wraps grouped attributes.
	RoleGroup int64 = 609096000

	// Laterality is never grouped in the SNOMED CT concept model.
	Laterality int64 = 272741003

	HasActiveIngredient int64 = 127489000
)

// Relationship is a single attribute-value pair of a concept definition,
// that is the relational counterpart of ∃type.destination.
// Group 0 means the relationship is not part of any role group, relationships
// sharing a non-zero group are conjoined under one role group.
type Relationship struct {
	Group         int   `json:"group" yaml:"group"`
	TypeID        int64 `json:"typeId" yaml:"typeId"`
	DestinationID int64 `json:"destinationId" yaml:"destinationId"`
}

// NewRelationship returns a new ungrouped relationship.
func NewRelationship(typeID, destinationID int64) Relationship {
	return Relationship{Group: 0, TypeID: typeID, DestinationID: destinationID}
}

// NewGroupedRelationship returns a new relationship in the given group.
func NewGroupedRelationship(group int, typeID, destinationID int64) Relationship {
	return Relationship{Group: group, TypeID: typeID, DestinationID: destinationID}
}

// IsA is true if the relationship is a subsumption relationship.
func (r Relationship) IsA() bool {
	return r.TypeID == IsA
}

func (r Relationship) String() string {
	return fmt.Sprintf("%d %d=%d", r.Group, r.TypeID, r.DestinationID)
}

// RelationshipGroups maps group numbers to the relationships of that group.
type RelationshipGroups map[int][]Relationship

// GroupRelationships builds a RelationshipGroups map from a flat list, each
// relationship is placed under its own Group.
func GroupRelationships(relationships ...Relationship) RelationshipGroups {
	res := make(RelationshipGroups)
	for _, r := range relationships {
		res[r.Group] = append(res[r.Group], r)
	}
	return res
}

// Add appends r to the group r.Group.
func (groups RelationshipGroups) Add(r Relationship) {
	groups[r.Group] = append(groups[r.Group], r)
}

// Len returns the total number of relationships in all groups.
func (groups RelationshipGroups) Len() int {
	n := 0
	for _, rels := range groups {
		n += len(rels)
	}
	return n
}

// String renders one relationship per line, groups in ascending order.
func (groups RelationshipGroups) String() string {
	lines := make([]string, 0, groups.Len())
	for _, group := range SortedGroups(groups) {
		for _, r := range groups[group] {
			lines = append(lines, r.String())
		}
	}
	return strings.Join(lines, "\n")
}

// AxiomRepresentation is the relational form of a class axiom: for each side
// either a named concept or a set of relationships is recorded.
// Primitive is true for SubClassOf axioms (necessary conditions only) and
// false for EquivalentClasses axioms.
type AxiomRepresentation struct {
	LeftHandSideNamedConcept   *int64             `json:"leftHandSideNamedConcept,omitempty" yaml:"leftHandSideNamedConcept,omitempty"`
	RightHandSideNamedConcept  *int64             `json:"rightHandSideNamedConcept,omitempty" yaml:"rightHandSideNamedConcept,omitempty"`
	LeftHandSideRelationships  RelationshipGroups `json:"leftHandSideRelationships,omitempty" yaml:"leftHandSideRelationships,omitempty"`
	RightHandSideRelationships RelationshipGroups `json:"rightHandSideRelationships,omitempty" yaml:"rightHandSideRelationships,omitempty"`
	Primitive                  bool               `json:"primitive" yaml:"primitive"`
}

// NewAxiomRepresentation returns an empty representation.
func NewAxiomRepresentation(primitive bool) *AxiomRepresentation {
	return &AxiomRepresentation{Primitive: primitive}
}

// SetLeftHandSideNamedConcept sets the named concept of the left side.
func (rep *AxiomRepresentation) SetLeftHandSideNamedConcept(id int64) {
	rep.LeftHandSideNamedConcept = &id
}

// SetRightHandSideNamedConcept sets the named concept of the right side.
func (rep *AxiomRepresentation) SetRightHandSideNamedConcept(id int64) {
	rep.RightHandSideNamedConcept = &id
}

// NamedConcept returns the named concept anchoring the axiom. The left side
// is preferred, for GCIs the right side carries the named concept.
func (rep *AxiomRepresentation) NamedConcept() (int64, bool) {
	if rep.LeftHandSideNamedConcept != nil {
		return *rep.LeftHandSideNamedConcept, true
	}
	if rep.RightHandSideNamedConcept != nil {
		return *rep.RightHandSideNamedConcept, true
	}
	return 0, false
}

// IsGCI is true if the left side is a complex expression.
func (rep *AxiomRepresentation) IsGCI() bool {
	return rep.LeftHandSideNamedConcept == nil && len(rep.LeftHandSideRelationships) > 0
}
