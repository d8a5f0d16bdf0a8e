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

package graph

import "github.com/cayleygraph/quad"

// Property is a predicate of a subject with all its objects.
type Property struct {
	Predicate quad.Value
	Objects   []quad.Value
}

// Description is everything a graph says about one subject.
type Description struct {
	Subject    quad.Value
	Properties []Property
}

// Describe groups the triples of g by subject, then by predicate.
// Subjects and predicates appear in order of first occurrence.
func Describe(g *Graph) []Description {
	var (
		out   []Description
		subjs = make(map[string]int)
		preds = make(map[[2]string]int)
	)
	for _, q := range g.Quads() {
		sk := quad.StringOf(q.Subject)
		si, ok := subjs[sk]
		if !ok {
			si = len(out)
			subjs[sk] = si
			out = append(out, Description{Subject: q.Subject})
		}
		d := &out[si]
		pk := [2]string{sk, quad.StringOf(q.Predicate)}
		pi, ok := preds[pk]
		if !ok {
			pi = len(d.Properties)
			preds[pk] = pi
			d.Properties = append(d.Properties, Property{Predicate: q.Predicate})
		}
		d.Properties[pi].Objects = append(d.Properties[pi].Objects, q.Object)
	}
	return out
}
