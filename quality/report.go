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
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
)

// EvaluateOptions selects what Evaluate runs.
type EvaluateOptions struct {
	// Compare is an optional second graph for compatibility and similarity.
	Compare *graph.Graph
	// PropertySet for completeness; SetDCAT if empty.
	PropertySet string
	// SkipLinks disables network access. Accuracy is then computed without
	// the broken link component.
	SkipLinks bool
	// Scalability enables the timing probe.
	Scalability bool
}

// Entry is the outcome of one dimension in a Report.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Score Score  `json:"score" yaml:"score"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the outcome of a whole-catalog evaluation.
type Report struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Started  time.Time     `json:"started" yaml:"started"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Triples  int           `json:"triples" yaml:"triples"`
	Entries  []Entry       `json:"dimensions" yaml:"dimensions"`

	Accuracy    *AccuracyResult    `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`
	Freshness   *Freshness         `json:"freshness,omitempty" yaml:"freshness,omitempty"`
	Lineage     *LineageResult     `json:"lineage,omitempty" yaml:"lineage,omitempty"`
	Scalability *ScalabilityResult `json:"scalability,omitempty" yaml:"scalability,omitempty"`
}

func (r *Report) add(name string, s Score, err error) {
	e := Entry{Name: name, Score: s}
	if err != nil {
		clog.Warningf("%s: %v", name, err)
		e.Error = err.Error()
	}
	r.Entries = append(r.Entries, e)
}

// Get returns the entry of a dimension by name.
func (r *Report) Get(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Evaluate runs every single-graph dimension on g, and the comparison
// dimensions if a second graph is given. A failing dimension is recorded in
// its entry and does not stop the others.
func (e *Engine) Evaluate(ctx context.Context, g *graph.Graph, o EvaluateOptions) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o.PropertySet == "" {
		o.PropertySet = SetDCAT
	}
	if _, err := e.PropertySet(o.PropertySet); err != nil {
		return nil, err
	}
	r := &Report{
		RunID:   uuid.NewString(),
		Started: e.now(),
		Triples: g.Size(),
	}
	start := time.Now()
	clog.Infof("evaluation %s: %d triples", r.RunID, r.Triples)

	links := undefined(Links, LowerIsBetter, "link check skipped")
	if !o.SkipLinks {
		links = e.BrokenLinks(ctx, g)
	}
	acc, err := e.accuracy(g, links)
	if err == nil {
		r.Accuracy = &acc
	}
	r.add(string(Accuracy), acc.Score, err)

	comp, err := e.Completeness(g, o.PropertySet)
	r.add(string(Completeness)+"/"+o.PropertySet, comp, err)
	r.add(string(Duplicates), e.Duplicates(g), nil)
	r.add(string(Links), links, nil)

	for _, k := range graph.Kinds {
		s, err := e.Consistency(g, k)
		s.Dimension = Consistency
		r.add(string(Consistency)+"/"+k.String(), s, err)
	}

	fresh, err := e.Timeliness(g)
	if err == nil {
		r.Freshness = &fresh
		r.add(string(Timeliness), fresh.Score(), nil)
	} else {
		r.add(string(Timeliness), Score{Dimension: Timeliness}, err)
	}

	r.add(string(Licensing), e.Licensing(g), nil)
	lin := e.Lineage(g)
	r.Lineage = &lin
	r.add(string(Lineage), lin.Score, nil)
	r.add(string(Readability), e.Readability(g), nil)

	if o.Scalability {
		sc, err := e.Scalability(g)
		if err == nil {
			r.Scalability = &sc
			r.add(string(Scalability), sc.Score(), nil)
		} else {
			r.add(string(Scalability), Score{Dimension: Scalability}, err)
		}
	}
	if o.Compare != nil {
		r.add(string(Compatibility), e.Compatibility(g, o.Compare), nil)
		r.add(string(Similarity), e.Similarity(g, o.Compare), nil)
	}
	r.Duration = time.Since(start)
	return r, nil
}
