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
	"context"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/linkcheck"
)

// LinkReport is the detailed outcome of the link validator.
type LinkReport struct {
	Score   Score              `json:"score" yaml:"score"`
	Total   int                `json:"total" yaml:"total"`
	Broken  int                `json:"broken" yaml:"broken"`
	Results []linkcheck.Result `json:"-" yaml:"-"`
}

// References returns the object of every triple that is an IRI, one entry
// per triple.
func References(g *graph.Graph) []string {
	var out []string
	for _, q := range g.Quads() {
		if iri, ok := q.Object.(quad.IRI); ok {
			out = append(out, string(iri))
		}
	}
	return out
}

// BrokenLinks returns the percentage of IRI objects that do not resolve.
func (e *Engine) BrokenLinks(ctx context.Context, g *graph.Graph) Score {
	return e.CheckLinks(ctx, g).Score
}

// CheckLinks resolves every IRI object of g. Each distinct IRI is resolved
// once; every triple counts. Resolution failures of any kind are broken links.
func (e *Engine) CheckLinks(ctx context.Context, g *graph.Graph) LinkReport {
	defer observe(Links, time.Now())
	refs := References(g)
	if len(refs) == 0 {
		clog.Infof("links: no links found")
		return LinkReport{Score: undefined(Links, LowerIsBetter, "no links found")}
	}
	c := &linkcheck.Checker{Resolver: e.resolver, Workers: e.workers, CacheSize: e.cacheSize}
	rep := LinkReport{Total: len(refs), Results: c.Check(ctx, refs)}
	for _, r := range rep.Results {
		if !r.Reachable() {
			rep.Broken++
		}
	}
	mLinksChecked.Add(float64(rep.Total))
	mLinksBroken.Add(float64(rep.Broken))
	rep.Score = defined(Links, LowerIsBetter, percent(rep.Broken, rep.Total))
	return rep
}
