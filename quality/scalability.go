// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quality

import (
	"errors"
	"io"
	"sort"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/catalogqa/graph"
)

// ErrEmptyGraph is returned by the scalability probe for a graph without triples.
var ErrEmptyGraph = errors.New("quality: empty graph")

// Timing summarizes repeated measurements of one operation.
type Timing struct {
	Samples []time.Duration `json:"samples" yaml:"samples"`
	Median  time.Duration   `json:"median" yaml:"median"`
	P90     time.Duration   `json:"p90" yaml:"p90"`
}

func newTiming(samples []time.Duration) Timing {
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Timing{
		Samples: samples,
		Median:  median(sorted),
		P90:     percentile(sorted, 90),
	}
}

func median(sorted []time.Duration) time.Duration {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// percentile uses the nearest-rank method.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// ScalabilityResult is the outcome of the scalability probe.
//
// The probe measures wall-clock time and is not deterministic: the
// classification may flip between runs on a loaded machine. Samples are
// kept so callers can judge the noise.
type ScalabilityResult struct {
	Scalable bool    `json:"scalable" yaml:"scalable"`
	Size     int     `json:"size" yaml:"size"`
	Small    Timing  `json:"small" yaml:"small"`
	Large    Timing  `json:"large" yaml:"large"`
	PerUnit  float64 `json:"per_unit_ns" yaml:"per_unit_ns"`
	Factor   float64 `json:"factor" yaml:"factor"`
}

// Score maps scalable to 100 and non-scalable to 0.
func (r ScalabilityResult) Score() Score {
	s := defined(Scalability, HigherIsBetter, 0)
	if r.Scalable {
		s.Value = 100
	}
	return s
}

// referenceGraph is the fixed one-triple graph the probe compares against.
func (e *Engine) referenceGraph() *graph.Graph {
	g := graph.New()
	g.AddTriple(e.probe.subject, e.probe.predicate, quad.String(e.probe.oldValue))
	return g
}

// Mutate replaces the object of the probe triple on a copy of g and writes
// the copy as N-Quads to w. The graph g itself is never modified.
func (e *Engine) Mutate(g *graph.Graph, w io.Writer) (*graph.Graph, error) {
	c := g.Copy()
	for _, q := range c.Match(e.probe.subject, e.probe.predicate, nil) {
		if graph.IsLiteral(q.Object) && graph.Lexical(q.Object) == e.probe.oldValue {
			c.Set(q.Subject, q.Predicate, e.probe.newValue)
			break
		}
	}
	qw := nquads.NewWriter(w)
	if _, err := quad.Copy(qw, c.NewReader()); err != nil {
		return nil, err
	}
	return c, qw.Close()
}

func (e *Engine) timeMutation(g *graph.Graph) ([]time.Duration, error) {
	for i := 0; i < e.probe.warmup; i++ {
		if _, err := e.Mutate(g, io.Discard); err != nil {
			return nil, err
		}
	}
	samples := make([]time.Duration, 0, e.probe.trials)
	for i := 0; i < e.probe.trials; i++ {
		start := time.Now()
		if _, err := e.Mutate(g, io.Discard); err != nil {
			return nil, err
		}
		samples = append(samples, time.Since(start))
	}
	return samples, nil
}

// Scalability times the probe mutation on the fixed reference graph and on
// g. The graph is scalable if the median time on g divided by its size is
// below the median time on the reference graph times the factor.
func (e *Engine) Scalability(g *graph.Graph) (ScalabilityResult, error) {
	defer observe(Scalability, time.Now())
	n := g.Size()
	if n == 0 {
		return ScalabilityResult{}, ErrEmptyGraph
	}
	small, err := e.timeMutation(e.referenceGraph())
	if err != nil {
		return ScalabilityResult{}, err
	}
	large, err := e.timeMutation(g)
	if err != nil {
		return ScalabilityResult{}, err
	}
	r := ScalabilityResult{
		Size:   n,
		Small:  newTiming(small),
		Large:  newTiming(large),
		Factor: e.probe.factor,
	}
	r.PerUnit = float64(r.Large.Median) / float64(n)
	r.Scalable = r.PerUnit < float64(r.Small.Median)*r.Factor
	return r, nil
}
