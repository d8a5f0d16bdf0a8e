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
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/voc"
)

// Kind is the semantic type of a catalog entity.
type Kind int

const (
	Catalog Kind = iota + 1
	Dataset
	Distribution
)

// Kinds lists every entity kind, in containment order.
var Kinds = []Kind{Catalog, Dataset, Distribution}

func (k Kind) String() string {
	switch k {
	case Catalog:
		return "catalog"
	case Dataset:
		return "dataset"
	case Distribution:
		return "distribution"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindError is returned for an unrecognized entity kind name.
type KindError struct {
	Name string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("unknown entity type %q: expected one of catalog, dataset, distribution", e.Name)
}

// ParseKind converts a case-insensitive kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, &KindError{Name: s}
}

// EntitiesOfType returns the distinct subjects typed as typ through pred.
func EntitiesOfType(g *Graph, pred, typ quad.Value) []quad.Value {
	return g.Subjects(pred, typ)
}

// Resolver enumerates catalog entities of a graph.
type Resolver struct {
	Type  quad.IRI
	Kinds map[Kind]quad.IRI
}

// NewResolver builds a resolver for the classes of the given vocabulary.
func NewResolver(v voc.Vocabulary) *Resolver {
	return &Resolver{
		Type: v.Type,
		Kinds: map[Kind]quad.IRI{
			Catalog:      v.Catalog,
			Dataset:      v.Dataset,
			Distribution: v.Distribution,
		},
	}
}

// Class returns the class IRI of a kind.
func (r *Resolver) Class(k Kind) (quad.IRI, bool) {
	iri, ok := r.Kinds[k]
	return iri, ok
}

// Entities returns the subjects of the given kind.
func (r *Resolver) Entities(g *Graph, k Kind) []quad.Value {
	iri, ok := r.Kinds[k]
	if !ok {
		return nil
	}
	return EntitiesOfType(g, r.Type, iri)
}

// AllEntities returns the union of catalogs, datasets and distributions.
// A subject typed with several kinds is returned once.
func (r *Resolver) AllEntities(g *Graph) []quad.Value {
	var (
		out  []quad.Value
		seen = make(map[string]struct{})
	)
	for _, k := range Kinds {
		for _, s := range r.Entities(g, k) {
			key := quad.StringOf(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
