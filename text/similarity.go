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

package text

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets have similarity 0.
func Jaccard(a, b mapset.Set[string]) float64 {
	union := a.Union(b).Cardinality()
	if union == 0 {
		return 0
	}
	return float64(a.Intersect(b).Cardinality()) / float64(union)
}

// FieldSimilarity returns the mean Jaccard similarity over all pairs of one
// value of v1 and one value of v2. It is 0 if either side has no values.
func (t *Tokenizer) FieldSimilarity(v1, v2 []string) float64 {
	if len(v1) == 0 || len(v2) == 0 {
		return 0
	}
	right := make([]mapset.Set[string], len(v2))
	for i, s := range v2 {
		right[i] = t.Tokens(s)
	}
	var sum float64
	for _, s := range v1 {
		left := t.Tokens(s)
		for _, r := range right {
			sum += Jaccard(left, r)
		}
	}
	return sum / float64(len(v1)*len(v2))
}

// FieldSimilarity is a shorthand for NewTokenizer(stop).FieldSimilarity(v1, v2).
func FieldSimilarity(v1, v2 []string, stop StopList) float64 {
	return NewTokenizer(stop).FieldSimilarity(v1, v2)
}
