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

package quality

import (
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/inference"
)

// SignalWeight is the score of one lineage signal. Six signals reach 99.6.
const SignalWeight = 16.6

// LineageSignals are the independent structural hints of lineage and provenance.
// Typing and predicate checks follow the rdfs:subClassOf and
// rdfs:subPropertyOf hierarchy declared in the graph.
type LineageSignals struct {
	// Hierarchy: some sub class or sub property link exists.
	Hierarchy bool `json:"hierarchy" yaml:"hierarchy"`
	// Ancestors: some class or property has a super class or super property.
	Ancestors bool `json:"ancestors" yaml:"ancestors"`
	// Descendants: some class or property has a sub class or sub property.
	Descendants bool `json:"descendants" yaml:"descendants"`
	// Entity: some subject is typed prov:Entity or one of its sub classes.
	Entity bool `json:"entity" yaml:"entity"`
	// Used: some prov:Activity has prov:used or one of its sub properties.
	Used bool `json:"used" yaml:"used"`
	// Associated: some prov:Activity has prov:wasAssociatedWith or one of its
	// sub properties.
	Associated bool `json:"associated" yaml:"associated"`
}

// Count returns the number of signals that hold.
func (s LineageSignals) Count() int {
	n := 0
	for _, b := range []bool{s.Hierarchy, s.Ancestors, s.Descendants, s.Entity, s.Used, s.Associated} {
		if b {
			n++
		}
	}
	return n
}

// LineageResult is the lineage score with the signals it was computed from.
type LineageResult struct {
	Score   Score          `json:"score" yaml:"score"`
	Signals LineageSignals `json:"signals" yaml:"signals"`
}

// Lineage scores lineage and provenance information by the number of
// signals that hold. More signals give a higher score, which stays below 100.
func (e *Engine) Lineage(g *graph.Graph) LineageResult {
	defer observe(Lineage, time.Now())
	v := e.voc
	hier := inference.FromGraph(g, v)

	var s LineageSignals
	s.Hierarchy = hier.Relationships() > 0
	_, s.Ancestors = hier.AnyClass((*inference.Class).HasAncestors)
	if !s.Ancestors {
		_, s.Ancestors = hier.AnyProperty((*inference.Property).HasAncestors)
	}
	_, s.Descendants = hier.AnyClass((*inference.Class).HasDescendants)
	if !s.Descendants {
		_, s.Descendants = hier.AnyProperty((*inference.Property).HasDescendants)
	}
	for _, c := range hier.SubClassesOf(v.ProvEntity) {
		if g.Has(nil, v.Type, c) {
			s.Entity = true
			break
		}
	}
	activities := hier.SubClassesOf(v.ProvActivity)
	s.Used = anyActivity(g, v.Type, activities, hier.SubPropertiesOf(v.ProvUsed))
	s.Associated = anyActivity(g, v.Type, activities, hier.SubPropertiesOf(v.ProvWasAssociatedWith))

	return LineageResult{
		Score:   defined(Lineage, HigherIsBetter, float64(s.Count())*SignalWeight),
		Signals: s,
	}
}

func anyActivity(g *graph.Graph, typ quad.Value, activities, preds []quad.Value) bool {
	for _, act := range activities {
		for _, a := range g.Subjects(typ, act) {
			for _, p := range preds {
				if g.Has(a, p, nil) {
					return true
				}
			}
		}
	}
	return false
}
