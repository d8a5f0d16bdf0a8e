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
	boom "github.com/tylertreat/BoomFilters"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
)

// Identical reports whether g1 and g2 hold exactly the same triples.
func Identical(g1, g2 *graph.Graph) bool {
	if g1.Size() != g2.Size() {
		return false
	}
	return containsAll(g2, g1) && containsAll(g1, g2)
}

func containsAll(g, sub *graph.Graph) bool {
	for _, q := range sub.Quads() {
		if !g.Contains(q) {
			return false
		}
	}
	return true
}

func tripleKey(q quad.Quad) []byte {
	q.Label = nil
	return []byte(q.NQuad())
}

// Shared returns the number of triples of g1 also present in g2.
func Shared(g1, g2 *graph.Graph) int {
	if g1.Size() == 0 || g2.Size() == 0 {
		return 0
	}
	// the filter rules out most absent triples before the index lookup
	filter := boom.NewBloomFilter(uint(g2.Size()), 0.01)
	for _, q := range g2.Quads() {
		filter.Add(tripleKey(q))
	}
	n := 0
	for _, q := range g1.Quads() {
		if !filter.Test(tripleKey(q)) {
			mBloomNegative.Inc()
			continue
		}
		mBloomPositive.Inc()
		if g2.Contains(q) {
			n++
		}
	}
	return n
}

// Compatibility returns |g1 ∩ g2| / |g1| as a percentage. The denominator
// is the size of the first graph only.
func (e *Engine) Compatibility(g1, g2 *graph.Graph) Score {
	defer observe(Compatibility, time.Now())
	if g1.Size() == 0 {
		clog.Infof("compatibility: no triples found")
		return undefined(Compatibility, HigherIsBetter, "no triples found")
	}
	if Identical(g1, g2) {
		return defined(Compatibility, HigherIsBetter, 100)
	}
	return defined(Compatibility, HigherIsBetter, percent(Shared(g1, g2), g1.Size()))
}
