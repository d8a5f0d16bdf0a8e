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

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/graph"
)

// fieldValues returns the lexical form of the object of every triple with
// predicate p, one entry per triple.
func fieldValues(g *graph.Graph, p quad.Value) []string {
	qs := g.Match(nil, p, nil)
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, graph.Lexical(q.Object))
	}
	return out
}

// Similarity compares the titles and descriptions of two graphs. Identical
// graphs score 100 without any text analysis. Otherwise each field scores
// the mean Jaccard similarity over all pairs of values, a field missing on
// either side scores 0, and the result is the mean of both fields.
func (e *Engine) Similarity(g1, g2 *graph.Graph) Score {
	defer observe(Similarity, time.Now())
	if Identical(g1, g2) {
		s := defined(Similarity, HigherIsBetter, 100)
		s.Notice = "graphs are identical"
		return s
	}
	tok := e.tokenizer()
	title := tok.FieldSimilarity(fieldValues(g1, e.title), fieldValues(g2, e.title))
	desc := tok.FieldSimilarity(fieldValues(g1, e.description), fieldValues(g2, e.description))
	return defined(Similarity, HigherIsBetter, (title+desc)/2*100)
}
