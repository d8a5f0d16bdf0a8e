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

// Package voc implements an RDF namespace (vocabulary) registry.
//
// Unlike a process-wide registry, a Namespaces value is built once per
// evaluation engine, so alternate vocabularies are a configuration concern.
package voc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

// Well-known base IRIs.
const (
	RDF     = rdf.NS
	RDFS    = rdfs.NS
	DCAT    = "http://www.w3.org/ns/dcat#"
	DCTerms = "http://purl.org/dc/terms/"
	FOAF    = "http://xmlns.com/foaf/0.1/"
	XSD     = "http://www.w3.org/2001/XMLSchema#"
	PROV    = "http://www.w3.org/ns/prov#"
)

// Namespace associates a short prefix (without the colon) with a base IRI.
type Namespace struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Full   string `json:"full" yaml:"full"`
}

// Defaults returns the namespaces catalogqa knows about out of the box.
func Defaults() []Namespace {
	return []Namespace{
		{Prefix: "rdf", Full: RDF},
		{Prefix: "rdfs", Full: RDFS},
		{Prefix: "dcat", Full: DCAT},
		{Prefix: "dct", Full: DCTerms},
		{Prefix: "dcterms", Full: DCTerms},
		{Prefix: "foaf", Full: FOAF},
		{Prefix: "xsd", Full: XSD},
		{Prefix: "prov", Full: PROV},
	}
}

// Namespaces is a set of prefix to base IRI mappings.
// It is not safe for concurrent modification; register everything before sharing it.
type Namespaces struct {
	prefixes map[string]string
}

// New creates a registry with the given namespaces.
func New(ns ...Namespace) *Namespaces {
	p := &Namespaces{prefixes: make(map[string]string, len(ns))}
	for _, n := range ns {
		p.Register(n.Prefix, n.Full)
	}
	return p
}

// FromMap creates a registry from a prefix to base IRI map, as found in configuration files.
func FromMap(m map[string]string) *Namespaces {
	p := New()
	for pref, full := range m {
		p.Register(pref, full)
	}
	return p
}

// Register associates a given prefix with a base vocabulary IRI.
// A trailing colon on the prefix is ignored.
func (p *Namespaces) Register(pref, full string) {
	p.prefixes[strings.TrimSuffix(pref, ":")] = full
}

// Lookup returns the base IRI registered for prefix.
func (p *Namespaces) Lookup(pref string) (string, bool) {
	full, ok := p.prefixes[pref]
	return full, ok
}

// ShortIRI replaces a base IRI of a known vocabulary with its prefix.
// The longest matching base IRI wins.
//
//	ShortIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type") // returns "rdf:type"
func (p *Namespaces) ShortIRI(iri string) string {
	best, bestLen := "", 0
	for pref, full := range p.prefixes {
		if len(full) > bestLen && strings.HasPrefix(iri, full) {
			best, bestLen = pref, len(full)
		} else if len(full) == bestLen && bestLen > 0 && strings.HasPrefix(iri, full) && pref < best {
			best = pref
		}
	}
	if bestLen == 0 {
		return iri
	}
	return best + ":" + iri[bestLen:]
}

// FullIRI replaces known prefix in IRI with its full vocabulary IRI.
// Unknown prefixes and absolute IRIs are returned unchanged.
//
//	FullIRI("rdf:type") // returns "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
func (p *Namespaces) FullIRI(iri string) string {
	i := strings.IndexByte(iri, ':')
	if i < 0 {
		return iri
	}
	if full, ok := p.prefixes[iri[:i]]; ok {
		return full + iri[i+1:]
	}
	return iri
}

// Expand resolves a compact IRI ("dcat:title"), a bracketed IRI
// ("<http://...>") or an absolute IRI into a quad.IRI.
// A prefixed name with an unknown prefix is an error.
func (p *Namespaces) Expand(name string) (quad.IRI, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("voc: empty IRI")
	}
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		return quad.IRI(name[1 : len(name)-1]), nil
	}
	i := strings.IndexByte(name, ':')
	if i < 0 {
		return "", fmt.Errorf("voc: %q is neither a prefixed name nor an absolute IRI", name)
	}
	if full, ok := p.prefixes[name[:i]]; ok {
		return quad.IRI(full + name[i+1:]), nil
	}
	if strings.HasPrefix(name[i+1:], "//") || name[:i] == "urn" || name[:i] == "mailto" {
		return quad.IRI(name), nil
	}
	return "", fmt.Errorf("voc: unknown prefix %q in %q", name[:i], name)
}

// ExpandAll expands every name, failing on the first invalid one.
func (p *Namespaces) ExpandAll(names []string) ([]quad.IRI, error) {
	out := make([]quad.IRI, 0, len(names))
	for _, n := range names {
		iri, err := p.Expand(n)
		if err != nil {
			return nil, err
		}
		out = append(out, iri)
	}
	return out, nil
}

// List enumerates all registered prefix-IRI pairs, sorted by prefix.
func (p *Namespaces) List() []Namespace {
	out := make([]Namespace, 0, len(p.prefixes))
	for pref, full := range p.prefixes {
		out = append(out, Namespace{Prefix: pref, Full: full})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Context returns the namespaces as a JSON-LD @context object.
func (p *Namespaces) Context() map[string]interface{} {
	ctx := make(map[string]interface{}, len(p.prefixes))
	for pref, full := range p.prefixes {
		ctx[pref] = full
	}
	return ctx
}
