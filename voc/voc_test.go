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

package voc

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"
)

var casesShortIRI = []struct {
	full  string
	short string
}{
	{full: "http://example.com/name", short: "ex:name"},
	{full: "http://www.w3.org/ns/dcat#Dataset", short: "dcat:Dataset"},
	{full: "http://purl.org/dc/terms/license", short: "dct:license"},
	{full: "http://unknown.org/x", short: "http://unknown.org/x"},
}

func TestShortIRI(t *testing.T) {
	ns := New(Defaults()...)
	ns.Register("ex:", "http://example.com/")
	for _, c := range casesShortIRI {
		s := ns.ShortIRI(c.full)
		require.Equal(t, c.short, s)
		require.Equal(t, c.full, ns.FullIRI(s))
	}
}

func TestExpand(t *testing.T) {
	ns := New(Defaults()...)

	iri, err := ns.Expand("dcat:title")
	require.NoError(t, err)
	require.Equal(t, quad.IRI("http://www.w3.org/ns/dcat#title"), iri)

	iri, err = ns.Expand("<http://example.org/p>")
	require.NoError(t, err)
	require.Equal(t, quad.IRI("http://example.org/p"), iri)

	iri, err = ns.Expand("https://example.org/p")
	require.NoError(t, err)
	require.Equal(t, quad.IRI("https://example.org/p"), iri)

	_, err = ns.Expand("nope:title")
	require.Error(t, err)
	_, err = ns.Expand("title")
	require.Error(t, err)

	_, err = ns.ExpandAll([]string{"dct:title", "bad:x"})
	require.Error(t, err)
}

func TestAlternateVocabulary(t *testing.T) {
	ns := FromMap(map[string]string{
		"rdf":  RDF,
		"rdfs": RDFS,
		"dcat": "http://example.org/my-dcat#",
		"prov": PROV,
	})
	v, err := ns.Vocabulary()
	require.NoError(t, err)
	require.Equal(t, quad.IRI("http://example.org/my-dcat#Dataset"), v.Dataset)
	require.Equal(t, quad.IRI(RDF+"type"), v.Type)

	_, err = New(Namespace{Prefix: "rdf", Full: RDF}).Vocabulary()
	require.Error(t, err)
}

func TestList(t *testing.T) {
	ns := New(Namespace{Prefix: "b", Full: "http://b/"}, Namespace{Prefix: "a", Full: "http://a/"})
	require.Equal(t, []Namespace{{Prefix: "a", Full: "http://a/"}, {Prefix: "b", Full: "http://b/"}}, ns.List())
	require.Equal(t, map[string]interface{}{"a": "http://a/", "b": "http://b/"}, ns.Context())
}
