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

// Package inference implements an in-memory store of the class and property
// hierarchies declared in a graph.
//
// Only the taxonomic rules are tracked:
//
//	(c rdfs:subClassOf d)    -> c is a child of d in the class hierarchy
//	(p rdfs:subPropertyOf q) -> p is a child of q in the property hierarchy
//	(x rdf:type c)           -> c is a class
//
// Transitivity (rules 5 and 11 of RDFS entailment) is answered by IsSubClassOf
// and IsSubPropertyOf rather than materialized.
package inference

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/voc"
)

// Class represents a RDF Class with the links to its super and sub classes.
type Class struct {
	name  quad.Value
	super map[*Class]struct{}
	sub   map[*Class]struct{}
}

func newClass(name quad.Value) *Class {
	return &Class{
		name:  name,
		super: map[*Class]struct{}{},
		sub:   map[*Class]struct{}{},
	}
}

// Name returns the class's name
func (class *Class) Name() quad.Value {
	return class.name
}

// HasAncestors reports whether the class is declared a sub class of another one.
func (class *Class) HasAncestors() bool {
	return len(class.super) > 0
}

// HasDescendants reports whether another class is declared a sub class of this one.
func (class *Class) HasDescendants() bool {
	return len(class.sub) > 0
}

// IsSubClassOf recursively checks whether class is a superClass
func (class *Class) IsSubClassOf(superClass *Class) bool {
	return class.isSubClassOf(superClass, map[*Class]struct{}{})
}

func (class *Class) isSubClassOf(superClass *Class, seen map[*Class]struct{}) bool {
	if class == superClass {
		return true
	}
	if _, ok := seen[class]; ok {
		return false
	}
	seen[class] = struct{}{}
	for s := range class.super {
		if s.isSubClassOf(superClass, seen) {
			return true
		}
	}
	return false
}

// Property represents a RDF Property with the links to its super and sub properties.
type Property struct {
	name  quad.Value
	super map[*Property]struct{}
	sub   map[*Property]struct{}
}

func newProperty(name quad.Value) *Property {
	return &Property{
		name:  name,
		super: map[*Property]struct{}{},
		sub:   map[*Property]struct{}{},
	}
}

// Name returns the property's name
func (property *Property) Name() quad.Value {
	return property.name
}

// HasAncestors reports whether the property is declared a sub property of another one.
func (property *Property) HasAncestors() bool {
	return len(property.super) > 0
}

// HasDescendants reports whether another property is declared a sub property of this one.
func (property *Property) HasDescendants() bool {
	return len(property.sub) > 0
}

// IsSubPropertyOf recursively checks whether property is a superProperty
func (property *Property) IsSubPropertyOf(superProperty *Property) bool {
	return property.isSubPropertyOf(superProperty, map[*Property]struct{}{})
}

func (property *Property) isSubPropertyOf(superProperty *Property, seen map[*Property]struct{}) bool {
	if property == superProperty {
		return true
	}
	if _, ok := seen[property]; ok {
		return false
	}
	seen[property] = struct{}{}
	for s := range property.super {
		if s.isSubPropertyOf(superProperty, seen) {
			return true
		}
	}
	return false
}

// Store is a struct holding the inference data
type Store struct {
	voc        voc.Vocabulary
	classes    map[string]*Class
	properties map[string]*Property
	order      []*Class
	porder     []*Property

	classLinks    int
	propertyLinks int
}

// NewStore creates a new Store recognizing the terms of the given vocabulary.
func NewStore(v voc.Vocabulary) *Store {
	return &Store{
		voc:        v,
		classes:    map[string]*Class{},
		properties: map[string]*Property{},
	}
}

// FromGraph creates a store from the typing and hierarchy triples of g.
func FromGraph(g *graph.Graph, v voc.Vocabulary) *Store {
	store := NewStore(v)
	for _, p := range []quad.IRI{v.SubClassOf, v.SubPropertyOf, v.Type} {
		store.ProcessQuads(g.Match(nil, p, nil))
	}
	return store
}

// GetClass returns a class struct for class name, if it doesn't exist in the store then it returns nil
func (store *Store) GetClass(name quad.Value) *Class {
	return store.classes[quad.StringOf(name)]
}

// GetProperty returns a property struct for property name, if it doesn't exist in the store then it returns nil
func (store *Store) GetProperty(name quad.Value) *Property {
	return store.properties[quad.StringOf(name)]
}

// Classes returns every known class, in order of first appearance.
func (store *Store) Classes() []*Class {
	return store.order
}

// Properties returns every known property, in order of first appearance.
func (store *Store) Properties() []*Property {
	return store.porder
}

// Relationships returns the number of distinct sub class and sub property links.
func (store *Store) Relationships() int {
	return store.classLinks + store.propertyLinks
}

// AnyClass returns the first class matching fn.
func (store *Store) AnyClass(fn func(*Class) bool) (*Class, bool) {
	for _, c := range store.order {
		if fn(c) {
			return c, true
		}
	}
	return nil, false
}

// AnyProperty returns the first property matching fn.
func (store *Store) AnyProperty(fn func(*Property) bool) (*Property, bool) {
	for _, p := range store.porder {
		if fn(p) {
			return p, true
		}
	}
	return nil, false
}

// SubClassesOf returns name followed by every known class that is, directly
// or transitively, a sub class of it.
func (store *Store) SubClassesOf(name quad.Value) []quad.Value {
	out := []quad.Value{name}
	super := store.GetClass(name)
	if super == nil {
		return out
	}
	for _, c := range store.Classes() {
		if c != super && c.IsSubClassOf(super) {
			out = append(out, c.name)
		}
	}
	return out
}

// SubPropertiesOf returns name followed by every known property that is,
// directly or transitively, a sub property of it.
func (store *Store) SubPropertiesOf(name quad.Value) []quad.Value {
	out := []quad.Value{name}
	super := store.GetProperty(name)
	if super == nil {
		return out
	}
	for _, p := range store.Properties() {
		if p != super && p.IsSubPropertyOf(super) {
			out = append(out, p.name)
		}
	}
	return out
}

func (store *Store) addClass(class quad.Value) *Class {
	key := quad.StringOf(class)
	if c, ok := store.classes[key]; ok {
		return c
	}
	c := newClass(class)
	store.classes[key] = c
	store.order = append(store.order, c)
	return c
}

func (store *Store) addProperty(property quad.Value) *Property {
	key := quad.StringOf(property)
	if p, ok := store.properties[key]; ok {
		return p
	}
	p := newProperty(property)
	store.properties[key] = p
	store.porder = append(store.porder, p)
	return p
}

func (store *Store) addClassRelationship(child quad.Value, parent quad.Value) {
	parentClass := store.addClass(parent)
	childClass := store.addClass(child)
	if _, ok := parentClass.sub[childClass]; !ok {
		parentClass.sub[childClass] = struct{}{}
		childClass.super[parentClass] = struct{}{}
		store.classLinks++
	}
}

func (store *Store) addPropertyRelationship(child quad.Value, parent quad.Value) {
	parentProperty := store.addProperty(parent)
	childProperty := store.addProperty(child)
	if _, ok := parentProperty.sub[childProperty]; !ok {
		parentProperty.sub[childProperty] = struct{}{}
		childProperty.super[parentProperty] = struct{}{}
		store.propertyLinks++
	}
}

// ProcessQuad is used to update the store with a new quad
func (store *Store) ProcessQuad(q quad.Quad) {
	subject, predicate, object := q.Subject, q.Predicate, q.Object
	predicateIRI, ok := predicate.(quad.IRI)
	if !ok {
		return
	}
	switch predicateIRI {
	case store.voc.Type:
		switch object.(type) {
		case quad.IRI, quad.BNode:
			store.addClass(object)
		}
	case store.voc.SubPropertyOf:
		store.addPropertyRelationship(subject, object)
	case store.voc.SubClassOf:
		store.addClassRelationship(subject, object)
	default:
		store.addProperty(predicate)
	}
}

// ProcessQuads is used to update the store with multiple quads
func (store *Store) ProcessQuads(quads []quad.Quad) {
	for _, q := range quads {
		store.ProcessQuad(q)
	}
}
