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
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/graph"
)

// Term renders a value for humans: IRIs shortened through the printer
// namespaces, literals quoted with their language or datatype.
func (p *Printer) Term(v quad.Value) string {
	switch v := v.(type) {
	case quad.IRI:
		if short := p.iri(string(v)); short != string(v) {
			return short
		}
		return v.String()
	case quad.BNode:
		return "_:" + string(v)
	case quad.LangString:
		return strconv.Quote(string(v.Value)) + "@" + v.Lang
	case quad.TypedString:
		return strconv.Quote(string(v.Value)) + "^^" + p.Term(v.Type)
	case quad.String:
		return strconv.Quote(string(v))
	}
	return strconv.Quote(graph.Lexical(v))
}

type subjectView struct {
	Subject    string              `json:"subject" yaml:"subject"`
	Properties map[string][]string `json:"properties" yaml:"properties"`
}

// Describe prints the triples of a graph grouped by subject and predicate.
func (p *Printer) Describe(ds []graph.Description) error {
	if p.structured() {
		out := make([]subjectView, 0, len(ds))
		for _, d := range ds {
			sv := subjectView{Subject: p.Term(d.Subject), Properties: make(map[string][]string, len(d.Properties))}
			for _, prop := range d.Properties {
				key := p.Term(prop.Predicate)
				for _, o := range prop.Objects {
					sv.Properties[key] = append(sv.Properties[key], p.Term(o))
				}
			}
			out = append(out, sv)
		}
		return Encode(p.W, p.Format, out)
	}
	for _, d := range ds {
		if err := p.printf("%s\n", p.Term(d.Subject)); err != nil {
			return err
		}
		for _, prop := range d.Properties {
			objs := make([]string, 0, len(prop.Objects))
			for _, o := range prop.Objects {
				objs = append(objs, p.Term(o))
			}
			if err := p.printf("  %s: %s\n", p.Term(prop.Predicate), strings.Join(objs, ", ")); err != nil {
				return err
			}
		}
	}
	return nil
}
