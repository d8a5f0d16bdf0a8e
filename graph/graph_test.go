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

import (
	"sort"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"
)

// This is a simple test graph.
//
//	+---+                        +---+
//	| A |-------               ->| F |<--
//	+---+       \------>+---+-/  +---+   \--+---+
//	             ------>|#B#|      |        | E |
//	+---+-------/      >+---+      |        +---+
//	| C |             /            v
//	+---+           -/           +---+
//	  ----    +---+/             |#G#|
//	      \-->|#D#|------------->+---+
//	          +---+
var simpleGraph = []quad.Quad{
	quad.MakeIRI("A", "follows", "B", ""),
	quad.MakeIRI("C", "follows", "B", ""),
	quad.MakeIRI("C", "follows", "D", ""),
	quad.MakeIRI("D", "follows", "B", ""),
	quad.MakeIRI("B", "follows", "F", ""),
	quad.MakeIRI("F", "follows", "G", ""),
	quad.MakeIRI("D", "follows", "G", ""),
	quad.MakeIRI("E", "follows", "F", ""),
	quad.MakeIRI("B", "status", "cool", "status_graph"),
	quad.MakeIRI("D", "status", "cool", "status_graph"),
	quad.MakeIRI("G", "status", "cool", "status_graph"),
}

func iris(names ...string) []string {
	sort.Strings(names)
	return names
}

func subjectNames(qs []quad.Quad) []string {
	var out []string
	for _, q := range qs {
		out = append(out, string(q.Subject.(quad.IRI)))
	}
	sort.Strings(out)
	return out
}

func TestAddDedup(t *testing.T) {
	g := FromQuads(simpleGraph)
	require.Equal(t, len(simpleGraph), g.Size())

	// labels are dropped, so the same triple in another graph is a duplicate
	require.False(t, g.Add(quad.MakeIRI("B", "status", "cool", "")))
	require.False(t, g.Add(quad.MakeIRI("A", "follows", "B", "other")))
	require.Equal(t, len(simpleGraph), g.Size())

	require.False(t, g.Add(quad.Quad{Subject: quad.IRI("A")}))
	require.True(t, g.AddTriple(quad.IRI("A"), quad.IRI("follows"), quad.String("B")))
	require.Equal(t, len(simpleGraph)+1, g.Size())
}

var casesMatch = []struct {
	name    string
	s, p, o quad.Value
	expect  []string
}{
	{name: "all", expect: iris("A", "C", "C", "D", "B", "F", "D", "E", "B", "D", "G")},
	{name: "subject", s: quad.IRI("C"), expect: iris("C", "C")},
	{name: "predicate", p: quad.IRI("status"), expect: iris("B", "D", "G")},
	{name: "object", o: quad.IRI("B"), expect: iris("A", "C", "D")},
	{name: "predicate object", p: quad.IRI("follows"), o: quad.IRI("G"), expect: iris("F", "D")},
	{name: "subject predicate", s: quad.IRI("D"), p: quad.IRI("follows"), expect: iris("D", "D")},
	{name: "full", s: quad.IRI("E"), p: quad.IRI("follows"), o: quad.IRI("F"), expect: iris("E")},
	{name: "no such triple", s: quad.IRI("E"), p: quad.IRI("follows"), o: quad.IRI("G")},
	{name: "unknown value", s: quad.IRI("Z")},
	{name: "literal is not iri", o: quad.String("B")},
}

func TestMatch(t *testing.T) {
	g := FromQuads(simpleGraph)
	for _, c := range casesMatch {
		t.Run(c.name, func(t *testing.T) {
			got := g.Match(c.s, c.p, c.o)
			require.Equal(t, c.expect, subjectNames(got))
			require.Equal(t, len(c.expect), g.Count(c.s, c.p, c.o))
			require.Equal(t, len(c.expect) > 0, g.Has(c.s, c.p, c.o))
			for _, q := range got {
				if c.s != nil {
					require.Equal(t, c.s, q.Subject)
				}
				if c.p != nil {
					require.Equal(t, c.p, q.Predicate)
				}
				if c.o != nil {
					require.Equal(t, c.o, q.Object)
				}
			}
		})
	}
}

func TestProjections(t *testing.T) {
	g := FromQuads(simpleGraph)
	require.Equal(t, []quad.Value{quad.IRI("A"), quad.IRI("C"), quad.IRI("D")},
		g.Subjects(quad.IRI("follows"), quad.IRI("B")))
	require.Equal(t, []quad.Value{quad.IRI("B"), quad.IRI("D")},
		g.Objects(quad.IRI("C"), quad.IRI("follows")))
	require.Equal(t, []quad.Value{quad.IRI("follows"), quad.IRI("status")},
		g.Predicates(quad.IRI("D"), nil))

	v, ok := g.Value(quad.IRI("B"), quad.IRI("status"))
	require.True(t, ok)
	require.Equal(t, quad.IRI("cool"), v)
	_, ok = g.Value(quad.IRI("A"), quad.IRI("status"))
	require.False(t, ok)
}

func TestRemove(t *testing.T) {
	g := FromQuads(simpleGraph)
	q := quad.MakeIRI("C", "follows", "D", "")
	require.True(t, g.Contains(q))
	require.True(t, g.Remove(q))
	require.False(t, g.Contains(q))
	require.False(t, g.Remove(q))
	require.Equal(t, len(simpleGraph)-1, g.Size())
	require.Len(t, g.Quads(), len(simpleGraph)-1)
	require.Equal(t, iris("C"), subjectNames(g.Match(quad.IRI("C"), nil, nil)))

	// the removed triple may come back
	require.True(t, g.Add(q))
	require.True(t, g.Contains(q))
}

func TestSetAndCopy(t *testing.T) {
	g := FromQuads(simpleGraph)
	c := g.Copy()
	require.Equal(t, g.Size(), c.Size())

	c.Set(quad.IRI("D"), quad.IRI("follows"), quad.String("nobody"))
	require.Equal(t, []quad.Value{quad.String("nobody")}, c.Objects(quad.IRI("D"), quad.IRI("follows")))
	require.Equal(t, g.Size()-1, c.Size())

	// the original is untouched
	require.Equal(t, []quad.Value{quad.IRI("B"), quad.IRI("G")}, g.Objects(quad.IRI("D"), quad.IRI("follows")))
	require.Equal(t, len(simpleGraph), g.Size())
}

func TestNewReader(t *testing.T) {
	g := FromQuads(simpleGraph)
	qs, err := quad.ReadAll(g.NewReader())
	require.NoError(t, err)
	require.Len(t, qs, len(simpleGraph))
	for _, q := range qs {
		require.Nil(t, q.Label)
	}
}

func TestDescribe(t *testing.T) {
	g := FromQuads(simpleGraph)
	desc := Describe(g)
	require.Len(t, desc, 7)
	require.Equal(t, quad.IRI("A"), desc[0].Subject)

	var d Description
	for _, x := range desc {
		if x.Subject == quad.IRI("D") {
			d = x
		}
	}
	require.Equal(t, []Property{
		{Predicate: quad.IRI("follows"), Objects: []quad.Value{quad.IRI("B"), quad.IRI("G")}},
		{Predicate: quad.IRI("status"), Objects: []quad.Value{quad.IRI("cool")}},
	}, d.Properties)
}
