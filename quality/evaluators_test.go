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
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/linkcheck"
)

func TestCompleteness(t *testing.T) {
	e := newEngine(t)

	t.Run("partial", func(t *testing.T) {
		g := makeGraph(
			tr(iri("ds"), rdfType, classDataset),
			tr(iri("ds"), dcat("title"), quad.String("Trees")),
		)
		s, err := e.Completeness(g, SetDCAT)
		require.NoError(t, err)
		require.True(t, s.Defined)
		assert.InDelta(t, 33.33, s.Value, 0.01)

		s, err = e.Completeness(g, SetCore)
		require.NoError(t, err)
		assert.Equal(t, 100.0, s.Value)
	})

	t.Run("mean over entities", func(t *testing.T) {
		g := makeGraph(
			tr(iri("cat"), rdfType, classCatalog),
			tr(iri("ds"), rdfType, classDataset),
			tr(iri("ds"), dcat("title"), quad.String("Trees")),
			tr(iri("dist"), rdfType, classDistribution),
			tr(iri("dist"), dcat("title"), quad.String("Trees CSV")),
			tr(iri("dist"), dcat("downloadURL"), quad.IRI("http://ok/trees.csv")),
			tr(iri("dist"), dcat("size"), quad.Int(42)),
		)
		s, err := e.Completeness(g, SetDCAT)
		require.NoError(t, err)
		// 0, 1/3 and 3/3
		assert.InDelta(t, 44.44, s.Value, 0.01)
	})

	t.Run("no entities", func(t *testing.T) {
		g := makeGraph(tr(iri("x"), dcat("title"), quad.String("Trees")))
		s, err := e.Completeness(g, SetDCAT)
		require.NoError(t, err)
		assert.False(t, s.Defined)
		assert.Equal(t, "no entities found", s.Notice)
	})

	t.Run("unknown set", func(t *testing.T) {
		_, err := e.Completeness(graph.New(), "bogus")
		var serr *UnknownPropertySetError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "bogus", serr.Name)
		assert.Contains(t, serr.Known, SetDCAT)
	})

	t.Run("empty set", func(t *testing.T) {
		_, err := e.CompletenessOf(graph.New(), PropertySet{Name: "none"})
		require.ErrorIs(t, err, ErrEmptyPropertySet)
	})

	t.Run("bounds", func(t *testing.T) {
		g := graph.New()
		for i := 0; i < 20; i++ {
			s := iri(fmt.Sprintf("ds%d", i))
			g.AddTriple(s, rdfType, classDataset)
			if i%2 == 0 {
				g.AddTriple(s, dcat("title"), quad.String("t"))
			}
			if i%3 == 0 {
				g.AddTriple(s, dcat("size"), quad.Int(i))
			}
			for _, name := range e.PropertySetNames() {
				sc, err := e.Completeness(g, name)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, sc.Value, 0.0)
				assert.LessOrEqual(t, sc.Value, 100.0)
			}
		}
	})
}

func TestDuplicates(t *testing.T) {
	e := newEngine(t)

	build := func(prefix string) *graph.Graph {
		return makeGraph(
			tr(iri(prefix+"ds1"), dcat("title"), quad.String("Trees")),
			tr(iri(prefix+"ds2"), dcat("title"), quad.String("Trees")),
			tr(iri(prefix+"ds3"), dcat("title"), quad.String("Parks")),
			tr(iri(prefix+"dist1"), dcat("downloadURL"), quad.IRI("http://ok/a.csv")),
		)
	}
	s := e.Duplicates(build(""))
	require.True(t, s.Defined)
	assert.Equal(t, LowerIsBetter, s.Polarity)
	assert.InDelta(t, 33.33, s.Value, 0.01)

	// relabeling subjects changes nothing
	assert.Equal(t, s.Value, e.Duplicates(build("renamed-")).Value)

	// literal and IRI with the same text are one value
	g := makeGraph(
		tr(iri("ds1"), dcat("title"), quad.String("http://ok/a.csv")),
		tr(iri("dist1"), dcat("downloadURL"), quad.IRI("http://ok/a.csv")),
	)
	assert.Equal(t, 100.0, e.Duplicates(g).Value)

	s = e.Duplicates(makeGraph(tr(iri("ds1"), dct("title"), quad.String("Trees"))))
	assert.False(t, s.Defined)
	assert.Equal(t, "no datasets or distributions found", s.Notice)
}

func TestLinks(t *testing.T) {
	var calls int32
	counting := linkcheck.ResolverFunc(func(ctx context.Context, ref string) linkcheck.Result {
		atomic.AddInt32(&calls, 1)
		return okResolver(ctx, ref)
	})
	e := newEngine(t, func(o *Options) { o.Resolver = counting })

	g := makeGraph(
		tr(iri("s1"), iri("p"), quad.IRI("http://ok/a")),
		tr(iri("s2"), iri("p"), quad.IRI("http://bad/b")),
		tr(iri("s3"), iri("p"), quad.IRI("http://ok/a")),
		tr(iri("s4"), iri("p"), quad.String("http://bad/literal")),
	)
	rep := e.CheckLinks(context.Background(), g)
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 1, rep.Broken)
	assert.InDelta(t, 33.33, rep.Score.Value, 0.01)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	require.Len(t, rep.Results, 3)
	assert.Equal(t, http.StatusNotFound, rep.Results[1].Status)

	s := e.BrokenLinks(context.Background(), makeGraph(tr(iri("s"), iri("p"), quad.String("x"))))
	assert.False(t, s.Defined)
	assert.Equal(t, "no links found", s.Notice)
}

func TestConsistency(t *testing.T) {
	e := newEngine(t)

	g := makeGraph(
		tr(iri("cat1"), rdfType, classCatalog),
		tr(iri("cat1"), dct("title"), quad.String("A")),
		tr(iri("cat1"), dct("title"), quad.String("B")),
		tr(iri("cat2"), rdfType, classCatalog),
	)
	s, err := e.Consistency(g, graph.Catalog)
	require.NoError(t, err)
	assert.InDelta(t, 33.33, s.Value, 0.01)
	assert.Equal(t, "1 of 3 catalog pairs inconsistent", s.Notice)

	pairs, bad, err := e.Inconsistencies(g, graph.Catalog)
	require.NoError(t, err)
	assert.Len(t, pairs, 3)
	assert.Equal(t, 1, bad)

	g = makeGraph(
		tr(iri("ds"), rdfType, classDataset),
		tr(iri("ds"), dct("title"), quad.String("A")),
	)
	s, err = e.Consistency(g, graph.Dataset)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Value)

	_, err = e.Consistency(g, graph.Distribution)
	require.ErrorIs(t, err, ErrNoPairs)

	_, err = e.Consistency(g, graph.Kind(42))
	var kerr *graph.KindError
	require.True(t, errors.As(err, &kerr))
}

func TestCompatibility(t *testing.T) {
	e := newEngine(t)
	g1 := makeGraph(
		tr(iri("a"), iri("p"), quad.String("1")),
		tr(iri("b"), iri("p"), quad.String("2")),
		tr(iri("c"), iri("p"), quad.String("3")),
		tr(iri("d"), iri("p"), quad.String("4")),
	)
	assert.True(t, Identical(g1, g1.Copy()))
	assert.Equal(t, 100.0, e.Compatibility(g1, g1).Value)

	g2 := makeGraph(
		tr(iri("a"), iri("p"), quad.String("1")),
		tr(iri("x"), iri("p"), quad.String("9")),
	)
	assert.False(t, Identical(g1, g2))
	assert.Equal(t, 1, Shared(g1, g2))
	assert.Equal(t, 25.0, e.Compatibility(g1, g2).Value)
	// the denominator is the first graph
	assert.Equal(t, 50.0, e.Compatibility(g2, g1).Value)

	assert.Equal(t, 0.0, e.Compatibility(g1, graph.New()).Value)
	s := e.Compatibility(graph.New(), g1)
	assert.False(t, s.Defined)
	assert.Equal(t, "no triples found", s.Notice)
}

func TestSimilarity(t *testing.T) {
	e := newEngine(t)
	g1 := makeGraph(
		tr(iri("ds"), dcat("title"), quad.String("Open data portal")),
		tr(iri("ds"), dcat("description"), quad.String("City budget data")),
	)
	s := e.Similarity(g1, g1.Copy())
	assert.Equal(t, 100.0, s.Value)
	assert.Equal(t, "graphs are identical", s.Notice)

	g2 := makeGraph(tr(iri("ds"), dcat("title"), quad.String("open data")))
	// titles share 2 of 3 tokens, descriptions are missing on one side
	assert.InDelta(t, 33.33, e.Similarity(g1, g2).Value, 0.01)

	assert.Equal(t, 0.0, e.Similarity(g1, graph.New()).Value)
}

func TestReadability(t *testing.T) {
	e := newEngine(t)
	g := makeGraph(
		tr(iri("ds"), rdfType, classDataset),
		tr(iri("ds"), dcat("title"), quad.String("Data quality matters.")),
		tr(iri("ds"), dct("description"), quad.String("The cat sat.")),
	)
	s := e.Readability(g)
	require.True(t, s.Defined)
	// 13.1 and -2.6
	assert.InDelta(t, 5.25, s.Value, 1e-9)

	s = e.Readability(makeGraph(tr(iri("ds"), rdfType, classDataset)))
	assert.False(t, s.Defined)
	assert.Equal(t, "no text found", s.Notice)
}

func TestTimeliness(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	e := newEngine(t, func(o *Options) { o.Now = func() time.Time { return now } })

	catalog := func(modified quad.Value) *graph.Graph {
		g := makeGraph(tr(iri("cat"), rdfType, classCatalog))
		if modified != nil {
			g.AddTriple(iri("cat"), dct("modified"), modified)
		}
		return g
	}

	for _, c := range []struct {
		name     string
		modified quad.Value
		fresh    bool
	}{
		{"364 days", quad.String(now.AddDate(0, 0, -364).Format(time.RFC3339)), true},
		{"366 days", quad.String(now.AddDate(0, 0, -366).Format(time.RFC3339)), false},
		{"date only", quad.String("2024-06-01"), true},
		{"typed", quad.TypedString{Value: "2020-01-01", Type: quad.IRI("http://www.w3.org/2001/XMLSchema#date")}, false},
		{"native time", quad.Time(now.Add(-time.Hour)), true},
	} {
		t.Run(c.name, func(t *testing.T) {
			f, err := e.Timeliness(catalog(c.modified))
			require.NoError(t, err)
			assert.Equal(t, c.fresh, f.Fresh)
			assert.Equal(t, iri("cat").String(), "<"+f.Catalog+">")
		})
	}

	f, err := e.Timeliness(catalog(nil))
	require.NoError(t, err)
	assert.False(t, f.Fresh)
	assert.Equal(t, "no modification date found", f.Notice)
	assert.Equal(t, 0.0, f.Score().Value)

	f, err = e.Timeliness(graph.New())
	require.NoError(t, err)
	assert.Equal(t, "no catalog found", f.Notice)

	_, err = e.Timeliness(catalog(quad.String("June 2024")))
	var terr *TimestampError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "June 2024", terr.Value)
}

func TestLicensing(t *testing.T) {
	e := newEngine(t)
	g := makeGraph(
		tr(iri("ds1"), rdfType, classDataset),
		tr(iri("ds1"), dct("license"), iri("cc-by")),
		tr(iri("ds1"), dct("license"), iri("cc0")),
		tr(iri("ds2"), rdfType, classDataset),
	)
	assert.Equal(t, 50.0, e.Licensing(g).Value)

	s := e.Licensing(makeGraph(tr(iri("cat"), rdfType, classCatalog)))
	assert.False(t, s.Defined)
	assert.Equal(t, "no datasets found", s.Notice)
}

func TestLineage(t *testing.T) {
	e := newEngine(t)
	steps := [][3]quad.Value{
		tr(iri("Report"), rdfs("subClassOf"), iri("Document")),
		tr(iri("e1"), rdfType, prov("Entity")),
		tr(iri("act"), rdfType, prov("Activity")),
		tr(iri("act"), prov("used"), iri("e1")),
		tr(iri("act"), prov("wasAssociatedWith"), iri("agent")),
	}

	r := e.Lineage(graph.New())
	assert.Equal(t, 0.0, r.Score.Value)

	g := graph.New()
	prev := r.Score.Value
	for _, s := range steps {
		g.AddTriple(s[0], s[1], s[2])
		r = e.Lineage(g)
		assert.GreaterOrEqual(t, r.Score.Value, prev)
		prev = r.Score.Value
	}
	assert.Equal(t, LineageSignals{
		Hierarchy: true, Ancestors: true, Descendants: true,
		Entity: true, Used: true, Associated: true,
	}, r.Signals)
	assert.InDelta(t, 99.6, r.Score.Value, 1e-9)
	assert.Less(t, r.Score.Value, 100.0)

	// a used edge on a subject that is not an activity does not count
	g = makeGraph(tr(iri("x"), prov("used"), iri("e1")))
	assert.False(t, e.Lineage(g).Signals.Used)
}

func TestLineageHierarchy(t *testing.T) {
	e := newEngine(t)

	// a dataset typed with a sub class of prov:Entity
	r := e.Lineage(makeGraph(
		tr(iri("Report"), rdfs("subClassOf"), prov("Entity")),
		tr(iri("ds"), rdfType, iri("Report")),
	))
	assert.Equal(t, LineageSignals{
		Hierarchy: true, Ancestors: true, Descendants: true, Entity: true,
	}, r.Signals)
	assert.InDelta(t, 4*SignalWeight, r.Score.Value, 1e-9)

	// an activity using its input through a sub property of prov:used
	r = e.Lineage(makeGraph(
		tr(iri("consumed"), rdfs("subPropertyOf"), prov("used")),
		tr(iri("act"), rdfType, prov("Activity")),
		tr(iri("act"), iri("consumed"), iri("input")),
	))
	assert.Equal(t, LineageSignals{
		Hierarchy: true, Ancestors: true, Descendants: true, Used: true,
	}, r.Signals)
	assert.InDelta(t, 66.4, r.Score.Value, 1e-9)

	// an instance of a sub class of prov:Activity
	r = e.Lineage(makeGraph(
		tr(iri("Harvest"), rdfs("subClassOf"), prov("Activity")),
		tr(iri("run"), rdfType, iri("Harvest")),
		tr(iri("run"), prov("wasAssociatedWith"), iri("bot")),
	))
	assert.True(t, r.Signals.Associated)
	assert.False(t, r.Signals.Entity)
}

func TestScalability(t *testing.T) {
	e := newEngine(t, func(o *Options) {
		o.Scalability.Trials = 3
		o.Scalability.Warmup = 0
	})

	_, err := e.Scalability(graph.New())
	require.ErrorIs(t, err, ErrEmptyGraph)

	g := makeGraph(
		tr(iri("subject1"), iri("predicate1"), quad.String("old_value")),
		tr(iri("ds"), dcat("title"), quad.String("Trees")),
	)
	var buf bytes.Buffer
	c, err := e.Mutate(g, &buf)
	require.NoError(t, err)
	assert.True(t, g.Has(iri("subject1"), iri("predicate1"), quad.String("old_value")))
	assert.True(t, c.Has(iri("subject1"), iri("predicate1"), quad.String("new_value")))
	assert.False(t, c.Has(iri("subject1"), iri("predicate1"), quad.String("old_value")))
	assert.Contains(t, buf.String(), `"new_value"`)
	assert.NotContains(t, buf.String(), `"old_value"`)

	r, err := e.Scalability(g)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Size)
	assert.Len(t, r.Small.Samples, 3)
	assert.Len(t, r.Large.Samples, 3)
	assert.LessOrEqual(t, r.Large.Median, r.Large.P90)
	assert.Equal(t, 10.0, r.Factor)
}

func TestTiming(t *testing.T) {
	ms := func(n ...int) []time.Duration {
		out := make([]time.Duration, len(n))
		for i, v := range n {
			out[i] = time.Duration(v) * time.Millisecond
		}
		return out
	}
	tm := newTiming(ms(5, 1, 3, 2, 4))
	assert.Equal(t, 3*time.Millisecond, tm.Median)
	assert.Equal(t, 5*time.Millisecond, tm.P90)
	assert.Equal(t, ms(5, 1, 3, 2, 4), tm.Samples)

	tm = newTiming(ms(1, 2, 3, 4))
	assert.Equal(t, 2500*time.Microsecond, tm.Median)
}

func TestAccuracy(t *testing.T) {
	// core completeness 50, no identity values, every link broken
	g := makeGraph(tr(iri("ds"), rdfType, classDataset))

	e := newEngine(t)
	r, err := e.Accuracy(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 50.0, r.Completeness.Value)
	assert.False(t, r.Duplicates.Defined)
	assert.Equal(t, 100.0, r.Links.Value)
	assert.InDelta(t, 75.0, r.Score.Value, 1e-9)
	assert.NotEmpty(t, r.Score.Notice)

	e = newEngine(t, func(o *Options) { o.NormalizeAccuracy = true })
	r, err = e.Accuracy(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, r.Normalized)
	assert.InDelta(t, 25.0, r.Score.Value, 1e-9)
}
