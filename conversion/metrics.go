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
	"github.com/prometheus/client_golang/prometheus"
)

const (
	directionToRelationships = "to_relationships"
	directionToAxiom         = "to_axiom"
	directionExtractIDs      = "extract_ids"

	outcomeError = "error"
)

// Metrics counts conversions. A nil *Metrics is valid and records nothing.
type Metrics struct {
	conversions     *prometheus.CounterVec
	neverGroupMoves prometheus.Counter
}

// NewMetrics creates the conversion counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "elaxioms",
			Name:      "conversions_total",
			Help:      "Number of conversions by direction and outcome.",
		}, []string{"direction", "outcome"}),
		neverGroupMoves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "elaxioms",
			Name:      "never_group_moves_total",
			Help:      "Number of never-group relationships moved to group 0.",
		}),
	}
	if err := reg.Register(m.conversions); err != nil {
		return nil, err
	}
	if err := reg.Register(m.neverGroupMoves); err != nil {
		reg.Unregister(m.conversions)
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(direction, outcome string) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(direction, outcome).Inc()
}

func (m *Metrics) observeMove() {
	if m == nil {
		return
	}
	m.neverGroupMoves.Inc()
}
