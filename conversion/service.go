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

	"go.uber.org/zap"

	"github.com/FabianWe/elaxioms"
	"github.com/FabianWe/elaxioms/elowl"
)

// ConversionService converts between axioms in functional syntax and their
// relationship form.
//
// The never-group set is fixed when the service is created and never
// modified afterwards, a service is therefore safe for concurrent use by
// multiple goroutines.
type ConversionService struct {
	neverGroup elaxioms.IDSet
	logger     *zap.Logger
	metrics    *Metrics
}

// Option configures a ConversionService.
type Option func(s *ConversionService)

// WithLogger sets the logger, the default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *ConversionService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records all conversions in m.
func WithMetrics(m *Metrics) Option {
	return func(s *ConversionService) {
		s.metrics = m
	}
}

// NewConversionService returns a new service. Relationships with a type in
// neverGroup are always rendered ungrouped.
func NewConversionService(neverGroup []int64, opts ...Option) *ConversionService {
	s := &ConversionService{
		neverGroup: elaxioms.NewIDSet(neverGroup...),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NeverGroup returns a copy of the never-group attribute set.
func (s *ConversionService) NeverGroup() elaxioms.IDSet {
	return s.neverGroup.Copy()
}

// ConvertAxiomToRelationships converts an axiom to relationships.
// The result is Unsupported for valid axioms without relationship form, any
// other failure is returned as *ConversionError.
func (s *ConversionService) ConvertAxiomToRelationships(axiom string) (Result, error) {
	return s.convertAxiom(axiom, nil)
}

// ConvertAxiomToRelationshipsFor works like ConvertAxiomToRelationships but
// also checks that the axiom is anchored on the concept anchorID.
func (s *ConversionService) ConvertAxiomToRelationshipsFor(anchorID int64, axiom string) (Result, error) {
	return s.convertAxiom(axiom, &anchorID)
}

func (s *ConversionService) convertAxiom(axiom string, anchorID *int64) (Result, error) {
	parsed, err := elowl.ParseAxiom(axiom)
	if err != nil {
		return s.failAxiom(directionToRelationships, axiom, &ConversionError{Err: err})
	}
	res, err := MapAxiom(parsed)
	if err != nil {
		return s.failAxiom(directionToRelationships, axiom, err)
	}
	if !res.Supported() {
		s.logger.Debug("Axiom has no relationship form",
			zap.String("axiom", axiom),
			zap.Stringer("kind", res.Kind))
		s.metrics.observe(directionToRelationships, Unsupported.String())
		return res, nil
	}
	if anchorID != nil {
		named, _ := res.Representation.NamedConcept()
		if named != *anchorID {
			return s.failAxiom(directionToRelationships, axiom, newConversionError("", ErrAnchorMismatch,
				"expected %d, found %d", *anchorID, named))
		}
	}
	s.logger.Debug("Converted axiom to relationships",
		zap.String("axiom", axiom),
		zap.Stringer("kind", res.Kind),
		zap.Bool("primitive", res.Representation.Primitive))
	s.metrics.observe(directionToRelationships, Supported.String())
	return res, nil
}

// ConvertRelationshipsToAxiom renders rep as axiom in canonical functional
// syntax. Never-group attributes are moved to group 0 and groups are
// renumbered before rendering.
func (s *ConversionService) ConvertRelationshipsToAxiom(rep *elaxioms.AxiomRepresentation) (string, error) {
	ser := &serializer{
		neverGroup: s.neverGroup,
		onMove: func(r elaxioms.Relationship) {
			s.logger.Debug("Moved never-group attribute to group 0",
				zap.Int64("typeId", r.TypeID),
				zap.Int64("destinationId", r.DestinationID),
				zap.Int("group", r.Group))
			s.metrics.observeMove()
		},
	}
	axiom, err := ser.axiom(rep)
	if err != nil {
		s.logger.Debug("Failed to convert relationships", zap.Error(err))
		s.metrics.observe(directionToAxiom, outcomeError)
		return "", err
	}
	res := axiom.String()
	s.metrics.observe(directionToAxiom, Supported.String())
	return res, nil
}

// GetIDsOfConceptsNamedInAxiom returns all identifiers used in the axiom,
// including properties. It works for all valid axioms, including those
// without relationship form.
func (s *ConversionService) GetIDsOfConceptsNamedInAxiom(axiom string) (elaxioms.IDSet, error) {
	parsed, err := elowl.ParseAxiom(axiom)
	if err != nil {
		_, err = s.failAxiom(directionExtractIDs, axiom, &ConversionError{Err: err})
		return nil, err
	}
	s.metrics.observe(directionExtractIDs, Supported.String())
	return elaxioms.NamedEntities(parsed), nil
}

func (s *ConversionService) failAxiom(direction, axiom string, err error) (Result, error) {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		convErr.Axiom = axiom
	}
	s.logger.Debug("Failed to convert axiom", zap.String("axiom", axiom), zap.Error(err))
	s.metrics.observe(direction, outcomeError)
	return Result{}, err
}
