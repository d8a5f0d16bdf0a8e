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
	"encoding/json"
	"io"

	"github.com/cayleygraph/quad/jsonld"
	"github.com/piprate/json-gold/ld"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/voc"
)

const defaultGraph = "@default"

// dataset converts a graph to a JSON-LD RDF dataset.
func dataset(g *graph.Graph) (*ld.RDFDataset, error) {
	d := ld.NewRDFDataset()
	for _, q := range g.Quads() {
		s, err := jsonld.ToNode(q.Subject)
		if err != nil {
			return nil, err
		}
		p, err := jsonld.ToNode(q.Predicate)
		if err != nil {
			return nil, err
		}
		o, err := jsonld.ToNode(q.Object)
		if err != nil {
			return nil, err
		}
		d.Graphs[defaultGraph] = append(d.Graphs[defaultGraph], ld.NewQuad(s, p, o, defaultGraph))
	}
	return d, nil
}

// Compact returns g as a compact JSON-LD document, using the namespaces as
// its context.
func Compact(g *graph.Graph, ns *voc.Namespaces) (map[string]interface{}, error) {
	d, err := dataset(g)
	if err != nil {
		return nil, err
	}
	opts := ld.NewJsonLdOptions("")
	docs, err := ld.NewJsonLdApi().FromRDF(d, opts)
	if err != nil {
		return nil, err
	}
	return ld.NewJsonLdProcessor().Compact(docs, map[string]interface{}{"@context": ns.Context()}, opts)
}

// WriteJSONLD writes g as a compact JSON-LD document.
func WriteJSONLD(w io.Writer, g *graph.Graph, ns *voc.Namespaces) error {
	doc, err := Compact(g, ns)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
