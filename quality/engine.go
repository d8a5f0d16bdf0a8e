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

// Package quality implements the evaluation engine of catalog metadata
// graphs. Each evaluator is a method of Engine reading one or two graphs and
// returning a Score; evaluators never mutate their input and keep no state
// between calls.
package quality

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/linkcheck"
	"github.com/cayleygraph/catalogqa/text"
	"github.com/cayleygraph/catalogqa/voc"
)

// Resolver classifies a dereferenceable reference. Tests inject stubs to
// make link scores deterministic.
type Resolver interface {
	Resolve(ctx context.Context, iri string) linkcheck.Result
}

// PropertySet is a named, ordered list of required predicates.
type PropertySet struct {
	Name       string
	Predicates []quad.IRI
}

// UnknownPropertySetError is returned for a property set name that is not configured.
type UnknownPropertySetError struct {
	Name  string
	Known []string
}

func (e *UnknownPropertySetError) Error() string {
	return fmt.Sprintf("unknown property set %q: expected one of %s", e.Name, strings.Join(e.Known, ", "))
}

type probe struct {
	trials, warmup int
	factor         float64
	subject        quad.Value
	predicate      quad.Value
	oldValue       string
	newValue       quad.Value
}

// Engine evaluates graphs. It is immutable once created and safe for
// concurrent use.
type Engine struct {
	ns       *voc.Namespaces
	voc      voc.Vocabulary
	entities *graph.Resolver

	sets       map[string]PropertySet
	duplicates []quad.IRI

	title, description         quad.IRI
	stop                       text.StopList
	readTitle, readDescription quad.IRI

	modified quad.IRI
	window   time.Duration
	now      func() time.Time

	license quad.IRI

	resolver  Resolver
	workers   int
	cacheSize int

	probe probe

	normalize   bool
	accuracySet string
}

// New creates an engine. Zero fields of o take the value of DefaultOptions.
// Every prefixed name is resolved here, so a bad vocabulary fails early.
func New(o Options) (*Engine, error) {
	def := DefaultOptions()
	if o.Namespaces == nil {
		o.Namespaces = def.Namespaces
	}
	if o.PropertySets == nil {
		o.PropertySets = def.PropertySets
	}
	if o.DuplicatePredicates == nil {
		o.DuplicatePredicates = def.DuplicatePredicates
	}
	setDefault(&o.SimilarityTitle, def.SimilarityTitle)
	setDefault(&o.SimilarityDescription, def.SimilarityDescription)
	setDefault(&o.Language, def.Language)
	setDefault(&o.ReadabilityTitle, def.ReadabilityTitle)
	setDefault(&o.ReadabilityDescription, def.ReadabilityDescription)
	setDefault(&o.ModifiedPredicate, def.ModifiedPredicate)
	setDefault(&o.LicensePredicate, def.LicensePredicate)
	setDefault(&o.AccuracyPropertySet, def.AccuracyPropertySet)
	if o.Window <= 0 {
		o.Window = def.Window
	}
	if o.Now == nil {
		o.Now = def.Now
	}
	if o.Resolver == nil {
		o.Resolver = linkcheck.NewHTTPResolver(linkcheck.Options{})
	}
	if o.Links.Workers <= 0 {
		o.Links.Workers = def.Links.Workers
	}
	s, ds := &o.Scalability, def.Scalability
	if s.Trials <= 0 {
		s.Trials = ds.Trials
	}
	if s.Warmup < 0 {
		s.Warmup = 0
	}
	if s.Factor <= 0 {
		s.Factor = ds.Factor
	}
	setDefault(&s.Subject, ds.Subject)
	setDefault(&s.Predicate, ds.Predicate)
	setDefault(&s.OldValue, ds.OldValue)
	setDefault(&s.NewValue, ds.NewValue)

	v, err := o.Namespaces.Vocabulary()
	if err != nil {
		return nil, err
	}
	e := &Engine{
		ns:          o.Namespaces,
		voc:         v,
		entities:    graph.NewResolver(v),
		sets:        make(map[string]PropertySet, len(o.PropertySets)),
		window:      o.Window,
		now:         o.Now,
		resolver:    o.Resolver,
		workers:     o.Links.Workers,
		cacheSize:   o.Links.CacheSize,
		normalize:   o.NormalizeAccuracy,
		accuracySet: o.AccuracyPropertySet,
	}
	for name, names := range o.PropertySets {
		preds, err := o.Namespaces.ExpandAll(names)
		if err != nil {
			return nil, fmt.Errorf("property set %q: %w", name, err)
		}
		e.sets[name] = PropertySet{Name: name, Predicates: preds}
	}
	if _, err := e.PropertySet(e.accuracySet); err != nil {
		return nil, err
	}
	if e.duplicates, err = o.Namespaces.ExpandAll(o.DuplicatePredicates); err != nil {
		return nil, fmt.Errorf("duplicate predicates: %w", err)
	}
	for _, t := range []struct {
		dst  *quad.IRI
		name string
	}{
		{&e.title, o.SimilarityTitle},
		{&e.description, o.SimilarityDescription},
		{&e.readTitle, o.ReadabilityTitle},
		{&e.readDescription, o.ReadabilityDescription},
		{&e.modified, o.ModifiedPredicate},
		{&e.license, o.LicensePredicate},
	} {
		if *t.dst, err = o.Namespaces.Expand(t.name); err != nil {
			return nil, err
		}
	}
	if e.stop, err = text.StopWords(o.Language); err != nil {
		return nil, err
	}

	e.probe = probe{
		trials:   s.Trials,
		warmup:   s.Warmup,
		factor:   s.Factor,
		oldValue: s.OldValue,
		newValue: quad.String(s.NewValue),
	}
	if e.probe.subject, err = o.Namespaces.Expand(s.Subject); err != nil {
		return nil, fmt.Errorf("scalability subject: %w", err)
	}
	if e.probe.predicate, err = o.Namespaces.Expand(s.Predicate); err != nil {
		return nil, fmt.Errorf("scalability predicate: %w", err)
	}
	return e, nil
}

func setDefault(s *string, def string) {
	if *s == "" {
		*s = def
	}
}

// Vocabulary returns the structural terms the engine resolved.
func (e *Engine) Vocabulary() voc.Vocabulary {
	return e.voc
}

// Namespaces returns the namespaces the engine was configured with.
func (e *Engine) Namespaces() *voc.Namespaces {
	return e.ns
}

// Entities returns the entity resolver of the engine.
func (e *Engine) Entities() *graph.Resolver {
	return e.entities
}

// PropertySet returns a configured property set by name.
func (e *Engine) PropertySet(name string) (PropertySet, error) {
	set, ok := e.sets[name]
	if !ok {
		return PropertySet{}, &UnknownPropertySetError{Name: name, Known: e.PropertySetNames()}
	}
	return set, nil
}

// PropertySetNames lists the configured property sets.
func (e *Engine) PropertySetNames() []string {
	names := make([]string, 0, len(e.sets))
	for name := range e.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) tokenizer() *text.Tokenizer {
	return text.NewTokenizer(e.stop)
}
