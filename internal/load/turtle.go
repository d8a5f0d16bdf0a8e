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
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/knakk/rdf"

	"github.com/cayleygraph/catalogqa/graph"
)

const (
	xsdString     = "http://www.w3.org/2001/XMLSchema#string"
	rdfLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

func readTurtle(g *graph.Graph, r io.Reader) error {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	for n := 1; ; n++ {
		t, err := dec.Decode()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to decode turtle at triple %d: %w", n, err)
		}
		s, p, o := FromTerm(t.Subj), FromTerm(t.Pred), FromTerm(t.Obj)
		if s == nil || p == nil || o == nil {
			continue
		}
		g.AddTriple(s, p, o)
	}
}

// FromTerm converts an RDF term decoded from Turtle to a quad value.
func FromTerm(t rdf.Term) quad.Value {
	switch t := t.(type) {
	case rdf.IRI:
		return quad.IRI(t.String())
	case rdf.Blank:
		return quad.BNode(strings.TrimPrefix(t.String(), "_:"))
	case rdf.Literal:
		dt := t.DataType.String()
		switch {
		case t.Lang() != "":
			return quad.LangString{Value: quad.String(t.String()), Lang: t.Lang()}
		case dt == "" || dt == xsdString || dt == rdfLangString:
			return quad.String(t.String())
		}
		return quad.TypedString{Value: quad.String(t.String()), Type: quad.IRI(dt)}
	}
	return nil
}
