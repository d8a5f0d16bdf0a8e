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

// Package graph implements an in-memory, indexed set of RDF triples.
//
// A Graph answers partial pattern queries (any subset of subject, predicate
// and object bound) and is the single data structure every quality evaluator
// reads from. Triples are compared structurally: two triples are equal if the
// canonical string forms of their three components are equal.
package graph

import (
	"github.com/cayleygraph/quad"
)

type logEntry struct {
	quad    quad.Quad
	ids     [3]int64
	deleted bool
}

// Graph is a set of triples with a per-direction index.
//
// A Graph is not safe for concurrent modification. Evaluators only read it;
// concurrent reads are fine.
type Graph struct {
	nextID int64
	idMap  map[string]int64
	revMap map[int64]quad.Value
	// log holds every triple ever added; index 0 is a sentinel.
	log   []logEntry
	size  int
	index directionIndex
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		idMap:  make(map[string]int64),
		revMap: make(map[int64]quad.Value),

		// Sentinel null entry so triple ids start at 1
		log: make([]logEntry, 1, 64),

		index:  newDirectionIndex(),
		nextID: 1,
	}
}

// FromQuads creates a graph holding the given quads, ignoring labels and duplicates.
func FromQuads(quads []quad.Quad) *Graph {
	g := New()
	for _, q := range quads {
		g.Add(q)
	}
	return g
}

// Size returns the number of distinct triples.
func (g *Graph) Size() int {
	return g.size
}

// Add inserts the triple part of q. The label is dropped, since a Graph
// holds a single default graph. It returns false if q is incomplete or
// already present.
func (g *Graph) Add(q quad.Quad) bool {
	if q.Subject == nil || q.Predicate == nil || q.Object == nil {
		return false
	}
	q.Label = nil
	if _, exists := g.indexOf(q); exists {
		return false
	}
	tid := int64(len(g.log))
	e := logEntry{quad: q}
	for i, d := range directions {
		v := q.Get(d)
		key := quad.StringOf(v)
		id, ok := g.idMap[key]
		if !ok {
			id = g.nextID
			g.idMap[key] = id
			g.revMap[id] = v
			g.nextID++
		}
		e.ids[i] = id
		g.index.add(d, id, tid)
	}
	g.log = append(g.log, e)
	g.size++
	return true
}

// AddTriple is a shorthand for Add with a label-less quad.
func (g *Graph) AddTriple(s, p, o quad.Value) bool {
	return g.Add(quad.Quad{Subject: s, Predicate: p, Object: o})
}

// Remove deletes the triple part of q. It returns false if it was not present.
func (g *Graph) Remove(q quad.Quad) bool {
	q.Label = nil
	tid, exists := g.indexOf(q)
	if !exists {
		return false
	}
	e := &g.log[tid]
	for i, d := range directions {
		g.index.remove(d, e.ids[i], tid)
	}
	e.deleted = true
	g.size--
	return true
}

// Contains reports whether the triple part of q is in the graph.
func (g *Graph) Contains(q quad.Quad) bool {
	q.Label = nil
	_, ok := g.indexOf(q)
	return ok
}

func (g *Graph) valueID(v quad.Value) (int64, bool) {
	id, ok := g.idMap[quad.StringOf(v)]
	return id, ok
}

// indexOf finds the triple id of q by scanning the smallest of its three
// direction indexes.
func (g *Graph) indexOf(q quad.Quad) (int64, bool) {
	if q.Subject == nil || q.Predicate == nil || q.Object == nil {
		return 0, false
	}
	var (
		ids  [3]int64
		best []int64
	)
	for i, d := range directions {
		id, ok := g.valueID(q.Get(d))
		// If we've never heard about a node, it must not exist
		if !ok {
			return 0, false
		}
		ids[i] = id
		list := g.index.get(d, id)
		if len(list) == 0 {
			return 0, false
		}
		if best == nil || len(list) < len(best) {
			best = list
		}
	}
	for _, tid := range best {
		if g.log[tid].ids == ids {
			return tid, true
		}
	}
	return 0, false
}

// Quads returns every triple in insertion order.
func (g *Graph) Quads() []quad.Quad {
	out := make([]quad.Quad, 0, g.size)
	for _, e := range g.log[1:] {
		if !e.deleted {
			out = append(out, e.quad)
		}
	}
	return out
}

// Match returns the triples matching every non-nil component. A nil
// component is a wildcard; Match(nil, nil, nil) returns the whole graph.
// Results follow insertion order, but callers must not rely on it across
// mutations.
func (g *Graph) Match(s, p, o quad.Value) []quad.Quad {
	var out []quad.Quad
	g.match(s, p, o, func(q quad.Quad) bool {
		out = append(out, q)
		return true
	})
	return out
}

// Has reports whether at least one triple matches the pattern.
func (g *Graph) Has(s, p, o quad.Value) bool {
	found := false
	g.match(s, p, o, func(quad.Quad) bool {
		found = true
		return false
	})
	return found
}

// Count returns the number of triples matching the pattern.
func (g *Graph) Count(s, p, o quad.Value) int {
	n := 0
	g.match(s, p, o, func(quad.Quad) bool {
		n++
		return true
	})
	return n
}

func (g *Graph) match(s, p, o quad.Value, fn func(quad.Quad) bool) {
	var (
		want  [3]int64
		bound [3]bool
		best  []int64
		found bool
	)
	for i, v := range [3]quad.Value{s, p, o} {
		if v == nil {
			continue
		}
		id, ok := g.valueID(v)
		if !ok {
			return
		}
		list := g.index.get(directions[i], id)
		if len(list) == 0 {
			return
		}
		want[i], bound[i] = id, true
		if !found || len(list) < len(best) {
			best, found = list, true
		}
	}
	if !found {
		for _, e := range g.log[1:] {
			if !e.deleted && !fn(e.quad) {
				return
			}
		}
		return
	}
	for _, tid := range best {
		e := g.log[tid]
		if (bound[0] && e.ids[0] != want[0]) ||
			(bound[1] && e.ids[1] != want[1]) ||
			(bound[2] && e.ids[2] != want[2]) {
			continue
		}
		if !fn(e.quad) {
			return
		}
	}
}

// Subjects returns the distinct subjects of triples matching (_, p, o).
func (g *Graph) Subjects(p, o quad.Value) []quad.Value {
	return g.project(nil, p, o, quad.Subject)
}

// Objects returns the distinct objects of triples matching (s, p, _).
func (g *Graph) Objects(s, p quad.Value) []quad.Value {
	return g.project(s, p, nil, quad.Object)
}

// Predicates returns the distinct predicates of triples matching (s, _, o).
func (g *Graph) Predicates(s, o quad.Value) []quad.Value {
	return g.project(s, nil, o, quad.Predicate)
}

func (g *Graph) project(s, p, o quad.Value, d quad.Direction) []quad.Value {
	var (
		out  []quad.Value
		seen = make(map[string]struct{})
	)
	g.match(s, p, o, func(q quad.Quad) bool {
		v := q.Get(d)
		key := quad.StringOf(v)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			out = append(out, v)
		}
		return true
	})
	return out
}

// Value returns the object of the first triple matching (s, p, _).
func (g *Graph) Value(s, p quad.Value) (quad.Value, bool) {
	var v quad.Value
	g.match(s, p, nil, func(q quad.Quad) bool {
		v = q.Object
		return false
	})
	return v, v != nil
}

// Set replaces every (s, p, _) triple with the single triple (s, p, o).
func (g *Graph) Set(s, p, o quad.Value) {
	for _, q := range g.Match(s, p, nil) {
		g.Remove(q)
	}
	g.AddTriple(s, p, o)
}

// Copy returns an independent copy of the graph. Removed triples are not carried over.
func (g *Graph) Copy() *Graph {
	c := New()
	c.log = make([]logEntry, 1, g.size+1)
	for _, e := range g.log[1:] {
		if !e.deleted {
			c.Add(e.quad)
		}
	}
	return c
}

// NewReader returns a quad reader over a snapshot of the graph.
func (g *Graph) NewReader() quad.Reader {
	return quad.NewReader(g.Quads())
}
