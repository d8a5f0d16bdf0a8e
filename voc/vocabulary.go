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

import "github.com/cayleygraph/quad"

// Vocabulary holds the structural terms the evaluators depend on,
// resolved against one Namespaces registry.
type Vocabulary struct {
	Type quad.IRI

	Catalog      quad.IRI
	Dataset      quad.IRI
	Distribution quad.IRI

	SubClassOf    quad.IRI
	SubPropertyOf quad.IRI

	ProvEntity            quad.IRI
	ProvActivity          quad.IRI
	ProvUsed              quad.IRI
	ProvWasAssociatedWith quad.IRI
}

// Vocabulary resolves the structural terms. It fails if one of the rdf, rdfs,
// dcat or prov prefixes is not registered.
func (p *Namespaces) Vocabulary() (Vocabulary, error) {
	var (
		v   Vocabulary
		err error
	)
	for _, t := range []struct {
		dst  *quad.IRI
		name string
	}{
		{&v.Type, "rdf:type"},
		{&v.Catalog, "dcat:Catalog"},
		{&v.Dataset, "dcat:Dataset"},
		{&v.Distribution, "dcat:Distribution"},
		{&v.SubClassOf, "rdfs:subClassOf"},
		{&v.SubPropertyOf, "rdfs:subPropertyOf"},
		{&v.ProvEntity, "prov:Entity"},
		{&v.ProvActivity, "prov:Activity"},
		{&v.ProvUsed, "prov:used"},
		{&v.ProvWasAssociatedWith, "prov:wasAssociatedWith"},
	} {
		if *t.dst, err = p.Expand(t.name); err != nil {
			return Vocabulary{}, err
		}
	}
	return v, nil
}
