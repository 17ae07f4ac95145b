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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabianWe/elaxioms"
	"github.com/FabianWe/elaxioms/elowl"
)

func newTestService() *ConversionService {
	return NewConversionService([]int64{elaxioms.Laterality})
}

func convert(t *testing.T, s *ConversionService, axiom string) *elaxioms.AxiomRepresentation {
	t.Helper()
	res, err := s.ConvertAxiomToRelationships(axiom)
	require.NoError(t, err)
	require.True(t, res.Supported(), "expected %q to be supported", axiom)
	return res.Representation
}

func TestGCITwoGroupsOneRelationshipInEach(t *testing.T) {
	s := newTestService()
	axiom := "SubClassOf(" +
		"ObjectIntersectionOf(" +
		":73211009 " +
		"ObjectSomeValuesFrom(" +
		":609096000 " +
		"ObjectSomeValuesFrom(" +
		":100105001 " +
		":100101001" +
		")" +
		")" +
		") " +
		":8801005" +
		")"

	rep := convert(t, s, axiom)
	assert.True(t, rep.Primitive)
	assert.True(t, rep.IsGCI())
	assert.Equal(t, "0 116680003=73211009\n1 100105001=100101001", rep.LeftHandSideRelationships.String())
	require.NotNil(t, rep.RightHandSideNamedConcept)
	assert.Equal(t, int64(8801005), *rep.RightHandSideNamedConcept)
	assert.Nil(t, rep.LeftHandSideNamedConcept)

	recreated, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, axiom, recreated)
}

func TestAdditionalAxiomPrimitiveTwoGroupsOneRelationshipInEach(t *testing.T) {
	s := newTestService()
	axiom := "SubClassOf(:8801005 ObjectIntersectionOf(:73211009 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:100105001 :100101001))))"

	rep := convert(t, s, axiom)
	assert.True(t, rep.Primitive)
	require.NotNil(t, rep.LeftHandSideNamedConcept)
	assert.Equal(t, int64(8801005), *rep.LeftHandSideNamedConcept)
	assert.Equal(t, "0 116680003=73211009\n1 100105001=100101001", rep.RightHandSideRelationships.String())

	recreated, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, axiom, recreated)
}

func TestSufficientlyDefinedTwoRelationshipsInGroup(t *testing.T) {
	s := newTestService()
	axiom := "EquivalentClasses(:10002003 ObjectIntersectionOf(:116175006 ObjectSomeValuesFrom(:609096000 ObjectIntersectionOf(ObjectSomeValuesFrom(:260686004 :129304002) ObjectSomeValuesFrom(:405813007 :414003)))))"

	rep := convert(t, s, axiom)
	assert.False(t, rep.Primitive)
	assert.Equal(t, int64(10002003), *rep.LeftHandSideNamedConcept)
	assert.Equal(t, "0 116680003=116175006\n1 260686004=129304002\n1 405813007=414003", rep.RightHandSideRelationships.String())

	recreated, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, axiom, recreated)
}

func TestPrimitiveWithSingleRelationship(t *testing.T) {
	s := newTestService()
	axiom := "SubClassOf(:118956008 :123037004)"

	rep := convert(t, s, axiom)
	assert.True(t, rep.Primitive)
	assert.Equal(t, int64(118956008), *rep.LeftHandSideNamedConcept)
	assert.Equal(t, "0 116680003=123037004", rep.RightHandSideRelationships.String())

	recreated, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, axiom, recreated)
}

func TestAttributeIsARelationship(t *testing.T) {
	s := newTestService()
	rep := convert(t, s, "SubObjectPropertyOf(:363698007 :762705008)")
	assert.True(t, rep.Primitive)
	assert.Equal(t, int64(363698007), *rep.LeftHandSideNamedConcept)
	assert.Equal(t, "0 116680003=762705008", rep.RightHandSideRelationships.String())

	// the representation does not remember the property axiom
	recreated, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, "SubClassOf(:363698007 :762705008)", recreated)
}

func TestNotRepresentable(t *testing.T) {
	s := newTestService()
	axioms := map[string]elaxioms.AxiomKind{
		"SubObjectPropertyOf(ObjectPropertyChain(:246093002 :738774007) :246093002)": elaxioms.SubObjectPropertyOfKind,
		"TransitiveObjectProperty(:738774007)":                                       elaxioms.TransitiveObjectPropertyKind,
		"ReflexiveObjectProperty(:733930001)":                                        elaxioms.ReflexiveObjectPropertyKind,
	}
	for axiom, kind := range axioms {
		t.Run(axiom, func(t *testing.T) {
			res, err := s.ConvertAxiomToRelationships(axiom)
			require.NoError(t, err)
			assert.False(t, res.Supported())
			assert.Equal(t, Unsupported, res.Outcome)
			assert.Equal(t, kind, res.Kind)
			assert.Nil(t, res.Representation)
		})
	}
}

func TestAdditionalAxiomNeverGrouped(t *testing.T) {
	s := newTestService()
	axiom := "EquivalentClasses(:9846003 ObjectIntersectionOf(:39132006 :64033007 ObjectSomeValuesFrom(:272741003 :24028007)))"

	rep := convert(t, s, axiom)
	assert.Equal(t, int64(9846003), *rep.LeftHandSideNamedConcept)
	assert.False(t, rep.Primitive)
	assert.Equal(t, "0 116680003=39132006\n0 116680003=64033007\n0 272741003=24028007", rep.RightHandSideRelationships.String())

	recreated, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, axiom, recreated)
}

func TestRoundTrip(t *testing.T) {
	s := newTestService()
	axioms := []string{
		"SubClassOf(:1 :2)",
		"SubClassOf(:1 ObjectSomeValuesFrom(:3 :4))",
		"SubClassOf(:1 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:3 :4)))",
		"SubClassOf(ObjectSomeValuesFrom(:3 :4) :1)",
		"SubClassOf(ObjectIntersectionOf(:2 ObjectSomeValuesFrom(:3 :4)) :1)",
		"EquivalentClasses(:1 ObjectIntersectionOf(:2 :5 ObjectSomeValuesFrom(:3 :4)))",
		"EquivalentClasses(ObjectIntersectionOf(:2 ObjectSomeValuesFrom(:3 :4)) :1)",
		"EquivalentClasses(:1 ObjectIntersectionOf(:2 ObjectSomeValuesFrom(:7 :8) ObjectSomeValuesFrom(:609096000 ObjectIntersectionOf(ObjectSomeValuesFrom(:3 :4) ObjectSomeValuesFrom(:5 :6))) ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:9 :10))))",
		"SubClassOf(:1 ObjectIntersectionOf(ObjectSomeValuesFrom(:3 :4) :2))",
	}
	for _, axiom := range axioms {
		t.Run(axiom, func(t *testing.T) {
			rep := convert(t, s, axiom)
			recreated, err := s.ConvertRelationshipsToAxiom(rep)
			require.NoError(t, err)
			assert.Equal(t, axiom, recreated)
		})
	}
}

func TestGroupsNumberedInOrderOfAppearance(t *testing.T) {
	s := newTestService()
	rep := convert(t, s, "EquivalentClasses(:1 ObjectIntersectionOf(ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:3 :4)) :2 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:5 :6))))")
	assert.Equal(t, "0 116680003=2\n1 3=4\n2 5=6", rep.RightHandSideRelationships.String())
}

func TestAnchorCheck(t *testing.T) {
	s := newTestService()

	res, err := s.ConvertAxiomToRelationshipsFor(118956008, "SubClassOf(:118956008 :123037004)")
	require.NoError(t, err)
	assert.True(t, res.Supported())

	res, err = s.ConvertAxiomToRelationshipsFor(8801005, "SubClassOf(ObjectIntersectionOf(:73211009 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:100105001 :100101001))) :8801005)")
	require.NoError(t, err)
	assert.True(t, res.Supported())

	_, err = s.ConvertAxiomToRelationshipsFor(123037004, "SubClassOf(:118956008 :123037004)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAnchorMismatch))

	// unsupported axioms have no anchor to check
	res, err = s.ConvertAxiomToRelationshipsFor(1, "TransitiveObjectProperty(:738774007)")
	require.NoError(t, err)
	assert.False(t, res.Supported())
}

func TestConvertAxiomErrors(t *testing.T) {
	s := newTestService()
	tests := []struct {
		name   string
		axiom  string
		target error
	}{
		{name: "parse error", axiom: "SubClassOf(:1 ObjectUnionOf(:2 :3))", target: elowl.ErrSyntax},
		{name: "both sides complex", axiom: "SubClassOf(ObjectSomeValuesFrom(:3 :4) ObjectSomeValuesFrom(:5 :6))", target: ErrAmbiguousSides},
		{name: "nested restriction", axiom: "SubClassOf(:1 ObjectSomeValuesFrom(:3 ObjectSomeValuesFrom(:4 :5)))", target: ErrUnsupportedShape},
		{name: "named class in role group", axiom: "SubClassOf(:1 ObjectSomeValuesFrom(:609096000 :2))", target: ErrUnsupportedShape},
		{name: "named class among group members", axiom: "SubClassOf(:1 ObjectSomeValuesFrom(:609096000 ObjectIntersectionOf(:2 ObjectSomeValuesFrom(:3 :4))))", target: ErrUnsupportedShape},
		{name: "nested role group", axiom: "SubClassOf(:1 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:3 :4))))", target: ErrUnsupportedShape},
		{name: "is-a restriction", axiom: "SubClassOf(:1 ObjectSomeValuesFrom(:116680003 :2))", target: ErrUnsupportedShape},
		{name: "missing separator", axiom: "SubClassOf(:1:2)", target: elowl.ErrSyntax},
		{name: "missing separator before restriction", axiom: "EquivalentClasses(:1 ObjectIntersectionOf(:2ObjectSomeValuesFrom(:3 :4)))", target: elowl.ErrSyntax},
		{name: "leading zero", axiom: "SubClassOf(:007 :2)", target: elowl.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.ConvertAxiomToRelationships(tt.axiom)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err.Error())
			assert.Nil(t, res.Representation)

			var convErr *ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, tt.axiom, convErr.Axiom)
		})
	}
}

func TestConversionErrorMessage(t *testing.T) {
	s := newTestService()
	_, err := s.ConvertAxiomToRelationships("SubClassOf(:1 ObjectSomeValuesFrom(:609096000 :2))")
	require.Error(t, err)
	assert.Equal(t,
		`cannot convert axiom "SubClassOf(:1 ObjectSomeValuesFrom(:609096000 :2))": unsupported expression shape: role group member is not an existential restriction in :2`,
		err.Error())
}

func TestGetIDsOfConceptsNamedInAxiom(t *testing.T) {
	s := newTestService()
	tests := []struct {
		axiom    string
		expected []int64
	}{
		{axiom: "TransitiveObjectProperty(:733930001)", expected: []int64{733930001}},
		{axiom: "ReflexiveObjectProperty(:738774007)", expected: []int64{738774007}},
		{axiom: "SubObjectPropertyOf(ObjectPropertyChain(:246093002 :738774007) :246093002)", expected: []int64{246093002, 738774007}},
		{axiom: "SubObjectPropertyOf(:363698007 :762705008)", expected: []int64{363698007, 762705008}},
		{
			axiom:    "EquivalentClasses(:9846003 ObjectIntersectionOf(:39132006 :64033007 ObjectSomeValuesFrom(:272741003 :24028007)) )",
			expected: []int64{9846003, 39132006, 64033007, 272741003, 24028007},
		},
		{
			axiom:    "SubClassOf(:1 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:3 ObjectSomeValuesFrom(:4 :5))))",
			expected: []int64{1, 609096000, 3, 4, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.axiom, func(t *testing.T) {
			ids, err := s.GetIDsOfConceptsNamedInAxiom(tt.axiom)
			require.NoError(t, err)
			assert.True(t, elaxioms.NewIDSet(tt.expected...).Equals(ids), "got %v", ids.Sorted())
		})
	}

	_, err := s.GetIDsOfConceptsNamedInAxiom("SubClassOf(:1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, elowl.ErrSyntax))
}

func TestConvertRelationshipsToAxiomAllowGroupedAttribute(t *testing.T) {
	s := newTestService()
	rep := elaxioms.NewAxiomRepresentation(false)
	rep.SetLeftHandSideNamedConcept(9846003)
	rep.RightHandSideRelationships = elaxioms.GroupRelationships(
		elaxioms.NewRelationship(elaxioms.IsA, 39132006),
		elaxioms.NewGroupedRelationship(1, elaxioms.HasActiveIngredient, 7771000))

	actual, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Contains(t, actual, "609096000")
	assert.Equal(t, "EquivalentClasses(:9846003 ObjectIntersectionOf(:39132006 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:127489000 :7771000))))", actual)
}

func TestConvertRelationshipsToAxiomMoveUngroupedAttribute(t *testing.T) {
	s := newTestService()
	rep := elaxioms.NewAxiomRepresentation(false)
	rep.SetLeftHandSideNamedConcept(9846003)
	rep.RightHandSideRelationships = elaxioms.GroupRelationships(
		elaxioms.NewRelationship(elaxioms.IsA, 39132006),
		// attempt to group an ungroupable attribute by placing it in group 1
		elaxioms.NewGroupedRelationship(1, elaxioms.Laterality, 7771000))

	actual, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.NotContains(t, actual, "609096000")
	assert.Equal(t, "EquivalentClasses(:9846003 ObjectIntersectionOf(:39132006 ObjectSomeValuesFrom(:272741003 :7771000)))", actual)
}

func TestConvertRelationshipsRenumbersGroups(t *testing.T) {
	s := newTestService()
	rep := elaxioms.NewAxiomRepresentation(true)
	rep.SetLeftHandSideNamedConcept(1)
	rep.RightHandSideRelationships = elaxioms.GroupRelationships(
		elaxioms.NewGroupedRelationship(7, 5, 6),
		elaxioms.NewGroupedRelationship(3, 3, 4),
		elaxioms.NewRelationship(elaxioms.IsA, 2))

	actual, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, "SubClassOf(:1 ObjectIntersectionOf(:2 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:3 :4)) ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:5 :6))))", actual)

	// converting back yields groups 1 and 2
	back := convert(t, s, actual)
	assert.Equal(t, "0 116680003=2\n1 3=4\n2 5=6", back.RightHandSideRelationships.String())
}

func TestConvertRelationshipsErrors(t *testing.T) {
	s := newTestService()
	named := func(id int64) *int64 { return &id }
	tests := []struct {
		name   string
		rep    *elaxioms.AxiomRepresentation
		target error
	}{
		{name: "nil", rep: nil, target: ErrEmptyExpression},
		{
			name:   "no named concept",
			rep:    &elaxioms.AxiomRepresentation{LeftHandSideRelationships: elaxioms.GroupRelationships(elaxioms.NewRelationship(3, 4)), RightHandSideRelationships: elaxioms.GroupRelationships(elaxioms.NewRelationship(5, 6))},
			target: ErrAmbiguousSides,
		},
		{
			name:   "empty right side",
			rep:    &elaxioms.AxiomRepresentation{LeftHandSideNamedConcept: named(1), RightHandSideRelationships: elaxioms.RelationshipGroups{0: nil}},
			target: ErrEmptyExpression,
		},
		{
			name: "named concept and relationships on one side",
			rep: &elaxioms.AxiomRepresentation{
				LeftHandSideNamedConcept:  named(1),
				LeftHandSideRelationships: elaxioms.GroupRelationships(elaxioms.NewRelationship(3, 4)),
				RightHandSideNamedConcept: named(2),
			},
			target: ErrAmbiguousSides,
		},
		{
			name: "group key conflict",
			rep: &elaxioms.AxiomRepresentation{
				LeftHandSideNamedConcept:   named(1),
				RightHandSideRelationships: elaxioms.RelationshipGroups{1: {elaxioms.NewGroupedRelationship(2, 3, 4)}},
			},
			target: ErrGroupConflict,
		},
		{
			name: "grouped is-a",
			rep: &elaxioms.AxiomRepresentation{
				LeftHandSideNamedConcept:   named(1),
				RightHandSideRelationships: elaxioms.GroupRelationships(elaxioms.NewGroupedRelationship(1, elaxioms.IsA, 4)),
			},
			target: ErrGroupConflict,
		},
		{
			name: "negative group",
			rep: &elaxioms.AxiomRepresentation{
				LeftHandSideNamedConcept:   named(1),
				RightHandSideRelationships: elaxioms.GroupRelationships(elaxioms.NewGroupedRelationship(-1, 3, 4)),
			},
			target: ErrGroupConflict,
		},
		{
			name: "invalid destination",
			rep: &elaxioms.AxiomRepresentation{
				LeftHandSideNamedConcept:   named(1),
				RightHandSideRelationships: elaxioms.GroupRelationships(elaxioms.NewRelationship(3, 0)),
			},
			target: ErrInvalidRelationship,
		},
		{
			name:   "invalid named concept",
			rep:    &elaxioms.AxiomRepresentation{LeftHandSideNamedConcept: named(-5), RightHandSideNamedConcept: named(2)},
			target: ErrInvalidRelationship,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ConvertRelationshipsToAxiom(tt.rep)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err.Error())
		})
	}
}

func TestConvertRelationshipsIdentityShorthand(t *testing.T) {
	s := newTestService()
	rep := elaxioms.NewAxiomRepresentation(true)
	rep.SetLeftHandSideNamedConcept(1)
	rep.SetRightHandSideNamedConcept(2)
	rep.RightHandSideRelationships = elaxioms.GroupRelationships(elaxioms.NewRelationship(elaxioms.IsA, 2))

	actual, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, "SubClassOf(:1 :2)", actual)
}

func TestNeverGroupAttributeInRoleGroup(t *testing.T) {
	s := newTestService()
	axiom := "EquivalentClasses(:1 ObjectIntersectionOf(:2 ObjectSomeValuesFrom(:609096000 ObjectSomeValuesFrom(:272741003 :4))))"

	// the mapper keeps the group of the text
	rep := convert(t, s, axiom)
	assert.Equal(t, "0 116680003=2\n1 272741003=4", rep.RightHandSideRelationships.String())

	// rendering applies the never-group policy
	recreated, err := s.ConvertRelationshipsToAxiom(rep)
	require.NoError(t, err)
	assert.Equal(t, "EquivalentClasses(:1 ObjectIntersectionOf(:2 ObjectSomeValuesFrom(:272741003 :4)))", recreated)

	// without the policy the text round-trips
	plain := NewConversionService(nil)
	recreated, err = plain.ConvertRelationshipsToAxiom(convert(t, plain, axiom))
	require.NoError(t, err)
	assert.Equal(t, axiom, recreated)
}
