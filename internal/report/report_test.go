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

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/linkcheck"
	"github.com/cayleygraph/catalogqa/quality"
	"github.com/cayleygraph/catalogqa/voc"
)

var ns = voc.New(voc.Defaults()...)

func catalog() *graph.Graph {
	g := graph.New()
	ds := quad.IRI("http://example.org/ds")
	g.AddTriple(ds, quad.IRI(voc.RDF+"type"), quad.IRI(voc.DCAT+"Dataset"))
	g.AddTriple(ds, quad.IRI(voc.DCAT+"title"), quad.String("Trees"))
	g.AddTriple(ds, quad.IRI(voc.DCAT+"title"), quad.LangString{Value: "Arbres", Lang: "fr"})
	return g
}

func TestParseFormat(t *testing.T) {
	for in, exp := range map[string]Format{"": Text, "TEXT": Text, "json": JSON, " yaml ": YAML} {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, exp, f)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestScore(t *testing.T) {
	e, err := quality.New(quality.Options{Resolver: linkcheck.ResolverFunc(nil)})
	require.NoError(t, err)
	s := e.Licensing(catalog())

	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: Text}
	require.NoError(t, p.Score("licensing", s))
	assert.Equal(t, "licensing: 0.00%\n", buf.String())

	buf.Reset()
	p.Format = JSON
	require.NoError(t, p.Score("licensing", s))
	var out struct {
		Name  string
		Score struct {
			Value    float64
			Defined  bool
			Polarity string
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "licensing", out.Name)
	assert.True(t, out.Score.Defined)
	assert.Equal(t, "higher-is-better", out.Score.Polarity)

	buf.Reset()
	p.Format = YAML
	require.NoError(t, p.Score("licensing", s))
	var y map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &y))
	assert.Equal(t, "licensing", y["name"])
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: Text, Namespaces: ns}
	require.NoError(t, p.Describe(graph.Describe(catalog())))
	assert.Equal(t, `<http://example.org/ds>
  rdf:type: dcat:Dataset
  dcat:title: "Trees", "Arbres"@fr
`, buf.String())
}

func TestTerm(t *testing.T) {
	p := &Printer{Namespaces: ns}
	assert.Equal(t, "_:b0", p.Term(quad.BNode("b0")))
	assert.Equal(t, `"2024-01-01"^^xsd:date`, p.Term(quad.TypedString{Value: "2024-01-01", Type: quad.IRI(voc.XSD + "date")}))
	assert.Equal(t, `"42"`, p.Term(quad.Int(42)))

	p = &Printer{}
	assert.Equal(t, "<"+voc.DCAT+"title>", p.Term(quad.IRI(voc.DCAT+"title")))
}

func TestLinks(t *testing.T) {
	rep := quality.LinkReport{
		Total:  3,
		Broken: 2,
		Results: []linkcheck.Result{
			{IRI: "http://ok/a", Status: 200},
			{IRI: "http://bad/b", Status: 404},
			{IRI: "http://bad/b", Status: 404},
			{IRI: "ftp://c", Err: linkcheck.ErrUnsupportedScheme},
		},
	}
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: Text}
	require.NoError(t, p.Links(rep, true))
	assert.Contains(t, buf.String(), "2 of 3 references broken")
	assert.Contains(t, buf.String(), "http://bad/b: status 404\n")
	assert.Contains(t, buf.String(), "ftp://c: "+linkcheck.ErrUnsupportedScheme.Error())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("http://bad/b")))

	buf.Reset()
	p.Format = JSON
	require.NoError(t, p.Links(rep, true))
	var out struct {
		Total       int
		BrokenLinks []linkView `json:"broken_links"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 3, out.Total)
	assert.Len(t, out.BrokenLinks, 2)
}

func TestFreshness(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: Text, Namespaces: ns, Now: func() time.Time { return now }}
	require.NoError(t, p.Freshness(quality.Freshness{
		Fresh:    true,
		Catalog:  "http://example.org/cat",
		Modified: now.AddDate(0, -1, 0),
	}))
	assert.Contains(t, buf.String(), "timeliness: fresh")
	assert.Contains(t, buf.String(), "2024-05-15")
	assert.Contains(t, buf.String(), "ago")

	buf.Reset()
	require.NoError(t, p.Freshness(quality.Freshness{Notice: "no catalog found"}))
	assert.Equal(t, "timeliness: stale (no catalog found)\n", buf.String())
}

func TestReport(t *testing.T) {
	r := &quality.Report{
		RunID:   "run",
		Triples: 12345,
		Entries: []quality.Entry{
			{Name: "licensing", Score: quality.Score{Dimension: quality.Licensing, Value: 50, Defined: true}},
			{Name: "consistency/distribution", Error: errors.New("no pairs").Error()},
		},
	}
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: Text}
	require.NoError(t, p.Report(r))
	assert.Contains(t, buf.String(), "12,345")
	assert.Contains(t, buf.String(), "50.00%")
	assert.Contains(t, buf.String(), "(higher-is-better)")
	assert.Contains(t, buf.String(), "error: no pairs")
}

func TestLineage(t *testing.T) {
	r := quality.LineageResult{
		Score:   quality.Score{Dimension: quality.Lineage, Value: 33.2, Defined: true},
		Signals: quality.LineageSignals{Hierarchy: true, Ancestors: true},
	}
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: Text}
	require.NoError(t, p.Lineage(r))
	out := buf.String()
	assert.Contains(t, out, "33.20%")
	assert.Regexp(t, `classes or properties with a super class:\s+yes`, out)
	assert.Regexp(t, `classes or properties with a sub class:\s+no`, out)
}

func TestCompact(t *testing.T) {
	doc, err := Compact(catalog(), ns)
	require.NoError(t, err)
	require.Contains(t, doc, "@context")
	assert.Equal(t, "http://example.org/ds", doc["@id"])
	assert.Contains(t, doc, "dcat:title")

	var buf bytes.Buffer
	require.NoError(t, WriteJSONLD(&buf, catalog(), ns))
	assert.Contains(t, buf.String(), `"dcat:Dataset"`)
}
