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

// directions indexed by the graph. Labels are not part of a triple graph.
var directions = [...]quad.Direction{quad.Subject, quad.Predicate, quad.Object}

// directionIndex maps, per direction, a value id to the ids of the triples
// holding that value in that direction. Triple ids are kept in insertion order.
type directionIndex struct {
	index [3]map[int64][]int64
}

func newDirectionIndex() directionIndex {
	return directionIndex{[...]map[int64][]int64{
		quad.Subject - 1:   make(map[int64][]int64),
		quad.Predicate - 1: make(map[int64][]int64),
		quad.Object - 1:    make(map[int64][]int64),
	}}
}

func (di directionIndex) get(d quad.Direction, id int64) []int64 {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	return di.index[d-1][id]
}

func (di directionIndex) add(d quad.Direction, id, tid int64) {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	di.index[d-1][id] = append(di.index[d-1][id], tid)
}

func (di directionIndex) remove(d quad.Direction, id, tid int64) {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	ids := di.index[d-1][id]
	for i, v := range ids {
		if v != tid {
			continue
		}
		if len(ids) == 1 {
			delete(di.index[d-1], id)
			return
		}
		di.index[d-1][id] = append(ids[:i:i], ids[i+1:]...)
		return
	}
}
