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
	"time"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
)

// Duplicates returns the percentage of identity values that occur more than
// once. Values of every identity predicate share one key space, keyed by
// their lexical form: two datasets with the same title and a title equal to
// some download URL are both duplicates.
func (e *Engine) Duplicates(g *graph.Graph) Score {
	defer observe(Duplicates, time.Now())
	counts := make(map[string]int)
	for _, p := range e.duplicates {
		for _, q := range g.Match(nil, p, nil) {
			counts[graph.Lexical(q.Object)]++
		}
	}
	if len(counts) == 0 {
		clog.Infof("duplicates: no datasets or distributions found")
		return undefined(Duplicates, LowerIsBetter, "no datasets or distributions found")
	}
	dup := 0
	for _, n := range counts {
		if n > 1 {
			dup++
		}
	}
	return defined(Duplicates, LowerIsBetter, percent(dup, len(counts)))
}
