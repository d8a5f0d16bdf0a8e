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
	"fmt"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/graph"
)

// ErrNoPairs is returned by Consistency when no entity of the requested kind
// has any property. A zero would read as perfectly consistent.
var ErrNoPairs = errors.New("quality: no subject-predicate pairs for entity type")

// Pair is a subject and one of its predicates.
type Pair struct {
	Subject   quad.Value
	Predicate quad.Value
	Objects   []quad.Value
}

// Inconsistencies returns every (subject, predicate) pair of the entities of
// kind k, and how many of them carry more than one distinct object.
func (e *Engine) Inconsistencies(g *graph.Graph, k graph.Kind) (pairs []Pair, inconsistent int, err error) {
	if _, ok := e.entities.Class(k); !ok {
		return nil, 0, &graph.KindError{Name: k.String()}
	}
	for _, s := range e.entities.Entities(g, k) {
		for _, p := range g.Predicates(s, nil) {
			objs := g.Objects(s, p)
			if len(objs) > 1 {
				inconsistent++
			}
			pairs = append(pairs, Pair{Subject: s, Predicate: p, Objects: objs})
		}
	}
	return pairs, inconsistent, nil
}

// Consistency returns the percentage of (subject, predicate) pairs of the
// entities of kind k that carry more than one distinct object. Lower is
// better.
func (e *Engine) Consistency(g *graph.Graph, k graph.Kind) (Score, error) {
	defer observe(Consistency, time.Now())
	pairs, bad, err := e.Inconsistencies(g, k)
	if err != nil {
		return Score{}, err
	}
	if len(pairs) == 0 {
		return Score{}, fmt.Errorf("%w: %s", ErrNoPairs, k)
	}
	s := defined(Consistency, LowerIsBetter, percent(bad, len(pairs)))
	s.Notice = fmt.Sprintf("%d of %d %s pairs inconsistent", bad, len(pairs), k)
	return s, nil
}
