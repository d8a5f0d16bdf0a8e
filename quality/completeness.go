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
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
)

// ErrEmptyPropertySet is returned when completeness is asked against a set
// with no predicates.
var ErrEmptyPropertySet = errors.New("quality: empty property set")

// SubjectCompleteness returns the percentage of the predicates of set that
// subject has at least one triple for.
func SubjectCompleteness(g *graph.Graph, subject quad.Value, set PropertySet) (float64, error) {
	if len(set.Predicates) == 0 {
		return 0, ErrEmptyPropertySet
	}
	present := 0
	for _, p := range set.Predicates {
		if g.Has(subject, p, nil) {
			present++
		}
	}
	return percent(present, len(set.Predicates)), nil
}

// Completeness is the mean completeness of every catalog, dataset and
// distribution against the named property set.
func (e *Engine) Completeness(g *graph.Graph, setName string) (Score, error) {
	set, err := e.PropertySet(setName)
	if err != nil {
		return Score{}, err
	}
	return e.CompletenessOf(g, set)
}

// CompletenessOf is Completeness for an explicit property set.
func (e *Engine) CompletenessOf(g *graph.Graph, set PropertySet) (Score, error) {
	defer observe(Completeness, time.Now())
	if len(set.Predicates) == 0 {
		return Score{}, ErrEmptyPropertySet
	}
	subjects := e.entities.AllEntities(g)
	if len(subjects) == 0 {
		clog.Infof("completeness: no entities found")
		return undefined(Completeness, HigherIsBetter, "no entities found"), nil
	}
	scores := make([]float64, 0, len(subjects))
	for _, s := range subjects {
		c, err := SubjectCompleteness(g, s, set)
		if err != nil {
			return Score{}, err
		}
		scores = append(scores, c)
	}
	return defined(Completeness, HigherIsBetter, mean(scores)), nil
}
