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
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the result of a single axiom of a batch.
type BatchResult struct {
	// Index is the position of the axiom in the input.
	Index  int
	Axiom  string
	Result Result
	// Err is the conversion error of this axiom, it never aborts the batch.
	Err error
}

// Batch is the result of ConvertAll, Results[i] belongs to the i-th axiom.
type Batch struct {
	ID          uuid.UUID
	Results     []BatchResult
	Supported   int
	Unsupported int
	Failed      int
}

// ConvertAll converts all axioms with at most workers concurrent
// conversions. Conversion errors are recorded per axiom, only the
// cancellation of ctx aborts the batch.
func (s *ConversionService) ConvertAll(ctx context.Context, axioms []string, workers int) (*Batch, error) {
	if workers <= 0 {
		workers = 1
	}
	batch := &Batch{ID: uuid.New(), Results: make([]BatchResult, len(axioms))}
	var supportedCount, unsupportedCount, failedCount int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, axiom := range axioms {
		if gctx.Err() != nil {
			break
		}
		i, axiom := i, axiom
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.ConvertAxiomToRelationships(axiom)
			switch {
			case err != nil:
				atomic.AddInt64(&failedCount, 1)
			case res.Supported():
				atomic.AddInt64(&supportedCount, 1)
			default:
				atomic.AddInt64(&unsupportedCount, 1)
			}
			batch.Results[i] = BatchResult{Index: i, Axiom: axiom, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	batch.Supported = int(supportedCount)
	batch.Unsupported = int(unsupportedCount)
	batch.Failed = int(failedCount)
	s.logger.Info("Converted batch",
		zap.String("batch_id", batch.ID.String()),
		zap.Int("axioms", len(axioms)),
		zap.Int("supported", batch.Supported),
		zap.Int("unsupported", batch.Unsupported),
		zap.Int("failed", batch.Failed))
	return batch, nil
}
