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

package load

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/piprate/json-gold/ld"

	"github.com/cayleygraph/catalogqa/graph"
)

// DocumentLoader returns the loader used for remote JSON-LD contexts.
// Contexts are fetched once per Loader.
func (l *Loader) DocumentLoader() ld.DocumentLoader {
	l.once.Do(func() {
		l.docs = ld.NewCachingDocumentLoader(ld.NewDefaultDocumentLoader(l.client()))
	})
	return l.docs
}

func (l *Loader) readJSONLD(g *graph.Graph, r io.Reader) error {
	doc, err := ld.DocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("failed to decode jsonld: %w", err)
	}
	opts := ld.NewJsonLdOptions("")
	opts.DocumentLoader = l.DocumentLoader()
	out, err := ld.NewJsonLdProcessor().ToRDF(doc, opts)
	if err != nil {
		return fmt.Errorf("failed to expand jsonld: %w", err)
	}
	ds, ok := out.(*ld.RDFDataset)
	if !ok {
		return fmt.Errorf("unexpected jsonld result %T", out)
	}
	names := make([]string, 0, len(ds.Graphs))
	for name := range ds.Graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, q := range ds.Graphs[name] {
			s, p, o := FromNode(q.Subject), FromNode(q.Predicate), FromNode(q.Object)
			if s == nil || p == nil || o == nil {
				continue
			}
			g.AddTriple(s, p, o)
		}
	}
	return nil
}

// FromNode converts a JSON-LD RDF node to a quad value.
func FromNode(n ld.Node) quad.Value {
	switch n := n.(type) {
	case *ld.IRI:
		return quad.IRI(n.Value)
	case *ld.BlankNode:
		return quad.BNode(strings.TrimPrefix(n.Attribute, "_:"))
	case *ld.Literal:
		switch {
		case n.Language != "":
			return quad.LangString{Value: quad.String(n.Value), Lang: n.Language}
		case n.Datatype == "" || n.Datatype == ld.XSDString:
			return quad.String(n.Value)
		}
		return quad.TypedString{Value: quad.String(n.Value), Type: quad.IRI(n.Datatype)}
	}
	return nil
}
