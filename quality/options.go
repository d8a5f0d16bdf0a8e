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

	"github.com/cayleygraph/catalogqa/linkcheck"
	"github.com/cayleygraph/catalogqa/voc"
)

// Built-in property set names.
const (
	SetDCAT = "dcat"
	SetDCT  = "dct"
	SetCore = "core"
)

// DefaultPropertySets returns the built-in property sets as prefixed names.
func DefaultPropertySets() map[string][]string {
	return map[string][]string{
		SetDCAT: {"dcat:title", "dcat:downloadURL", "dcat:size"},
		SetDCT:  {"dct:title", "dcat:downloadURL", "dcat:byteSize"},
		SetCore: {"dcat:title", "rdf:type"},
	}
}

// FreshnessWindow is the default rolling window of the timeliness check.
const FreshnessWindow = 365 * 24 * time.Hour

// LinkOptions configures the link validator.
type LinkOptions struct {
	Workers   int
	CacheSize int
}

// ScalabilityOptions configures the scalability probe. Subject, Predicate
// and the values are prefixed names or IRIs, resolved like every other term.
type ScalabilityOptions struct {
	Trials    int
	Warmup    int
	Factor    float64
	Subject   string
	Predicate string
	OldValue  string
	NewValue  string
}

// Options configures an Engine. Every term is a prefixed name resolved
// through Namespaces, a bracketed IRI or an absolute IRI.
type Options struct {
	// Namespaces defaults to voc.Defaults.
	Namespaces *voc.Namespaces

	PropertySets        map[string][]string
	DuplicatePredicates []string

	SimilarityTitle       string
	SimilarityDescription string
	Language              string

	ReadabilityTitle       string
	ReadabilityDescription string

	ModifiedPredicate string
	Window            time.Duration

	LicensePredicate string

	// Resolver defaults to a linkcheck.HTTPResolver with default options.
	Resolver Resolver
	Links    LinkOptions

	Scalability ScalabilityOptions

	// NormalizeAccuracy averages polarity-normalized scores instead of the
	// legacy mixed-sign raw values.
	NormalizeAccuracy   bool
	AccuracyPropertySet string

	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options matching the reference tools.
func DefaultOptions() Options {
	return Options{
		Namespaces:             voc.New(voc.Defaults()...),
		PropertySets:           DefaultPropertySets(),
		DuplicatePredicates:    []string{"dcat:title", "dcat:downloadURL"},
		SimilarityTitle:        "dcat:title",
		SimilarityDescription:  "dcat:description",
		Language:               "english",
		ReadabilityTitle:       "dcat:title",
		ReadabilityDescription: "dct:description",
		ModifiedPredicate:      "dct:modified",
		Window:                 FreshnessWindow,
		LicensePredicate:       "dct:license",
		Links: LinkOptions{
			Workers: linkcheck.DefaultWorkers,
		},
		Scalability: ScalabilityOptions{
			Trials:    5,
			Warmup:    1,
			Factor:    10,
			Subject:   "<http://example.org/subject1>",
			Predicate: "<http://example.org/predicate1>",
			OldValue:  "old_value",
			NewValue:  "new_value",
		},
		AccuracyPropertySet: SetCore,
		Now:                 time.Now,
	}
}
