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

	"github.com/cayleygraph/catalogqa/graph"
)

// AccuracyResult is the composite accuracy and the scores it averages.
type AccuracyResult struct {
	Score        Score `json:"score" yaml:"score"`
	Completeness Score `json:"completeness" yaml:"completeness"`
	Duplicates   Score `json:"duplicates" yaml:"duplicates"`
	Links        Score `json:"links" yaml:"links"`
	Normalized   bool  `json:"normalized" yaml:"normalized"`
}

// Combine averages the defined scores. With normalize unset, raw values are
// averaged whatever their polarity, which is the historical accuracy scale.
// With normalize set, every score is first turned higher-is-better.
// If no score is defined, neither is the result.
func Combine(d Dimension, normalize bool, scores ...Score) Score {
	var vals []float64
	for _, s := range scores {
		if !s.Defined {
			continue
		}
		if normalize {
			vals = append(vals, s.Normalized())
		} else {
			vals = append(vals, s.Value)
		}
	}
	if len(vals) == 0 {
		return undefined(d, HigherIsBetter, "no component defined")
	}
	return defined(d, HigherIsBetter, mean(vals))
}

// Accuracy combines core completeness, duplicates and broken links.
func (e *Engine) Accuracy(ctx context.Context, g *graph.Graph) (AccuracyResult, error) {
	return e.accuracy(g, e.BrokenLinks(ctx, g))
}

func (e *Engine) accuracy(g *graph.Graph, links Score) (AccuracyResult, error) {
	defer observe(Accuracy, time.Now())
	comp, err := e.Completeness(g, e.accuracySet)
	if err != nil {
		return AccuracyResult{}, err
	}
	r := AccuracyResult{
		Completeness: comp,
		Duplicates:   e.Duplicates(g),
		Links:        links,
		Normalized:   e.normalize,
	}
	r.Score = Combine(Accuracy, e.normalize, r.Completeness, r.Duplicates, r.Links)
	if !e.normalize && r.Score.Defined {
		r.Score.Notice = "mean of raw completeness, duplicate and broken link percentages"
	}
	return r, nil
}
