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

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/FabianWe/elaxioms"
	"github.com/FabianWe/elaxioms/conversion"
)

// resultOutput is the JSON form of a conversion result.
type resultOutput struct {
	Index          *int                          `json:"index,omitempty"`
	Axiom          string                        `json:"axiom,omitempty"`
	Outcome        string                        `json:"outcome"`
	Kind           string                        `json:"kind,omitempty"`
	Representation *elaxioms.AxiomRepresentation `json:"representation,omitempty"`
	Error          string                        `json:"error,omitempty"`
}

func newResultOutput(res conversion.Result, err error) resultOutput {
	if err != nil {
		return resultOutput{Outcome: "error", Error: err.Error()}
	}
	return resultOutput{
		Outcome:        res.Outcome.String(),
		Kind:           res.Kind.String(),
		Representation: res.Representation,
	}
}

func (a *app) relationshipsCmd() *cobra.Command {
	var anchor int64
	cmd := &cobra.Command{
		Use:   "relationships <axiom>",
		Short: "Convert an axiom to relationships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res conversion.Result
				err error
			)
			if cmd.Flags().Changed("anchor") {
				res, err = a.service.ConvertAxiomToRelationshipsFor(anchor, args[0])
			} else {
				res, err = a.service.ConvertAxiomToRelationships(args[0])
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newResultOutput(res, nil), true)
		},
	}
	cmd.Flags().Int64Var(&anchor, "anchor", 0, "Expected named concept of the axiom")
	return cmd
}

func (a *app) axiomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "axiom [file]",
		Short: "Convert a JSON relationship representation to an axiom",
		Long:  "Reads the representation from file, or from stdin if no file or - is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()
			var rep elaxioms.AxiomRepresentation
			if err := json.NewDecoder(r).Decode(&rep); err != nil {
				return fmt.Errorf("decode representation: %w", err)
			}
			axiom, err := a.service.ConvertRelationshipsToAxiom(&rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), axiom)
			return nil
		},
	}
}

func (a *app) idsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ids <axiom>",
		Short: "Print the identifiers of all concepts named in an axiom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.service.GetIDsOfConceptsNamedInAxiom(args[0])
			if err != nil {
				return err
			}
			for _, id := range ids.Sorted() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func (a *app) batchCmd() *cobra.Command {
	var printMetrics bool
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one axiom per line, printing one JSON result per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()
			axioms, err := readLines(r)
			if err != nil {
				return err
			}
			batch, err := a.service.ConvertAll(cmd.Context(), axioms, a.cfg.Workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, res := range batch.Results {
				line := newResultOutput(res.Result, res.Err)
				index := res.Index
				line.Index = &index
				line.Axiom = res.Axiom
				if err := writeJSON(out, line, false); err != nil {
					return err
				}
			}
			if printMetrics {
				if err := a.writeMetrics(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			if batch.Failed > 0 {
				return fmt.Errorf("%d of %d axioms failed", batch.Failed, len(axioms))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&printMetrics, "metrics", false, "Print the conversion metrics to stderr after the batch")
	return cmd
}

// writeMetrics writes all registered metrics in the Prometheus text format.
func (a *app) writeMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// readLines returns all non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func writeJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
