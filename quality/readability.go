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
	"math"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/text"
)

// Readability returns the mean Flesch-Kincaid grade of the first title and
// the first description of every dataset, clamped to [0, 100]. A lower
// grade is easier to read.
func (e *Engine) Readability(g *graph.Graph) Score {
	defer observe(Readability, time.Now())
	var grades []float64
	for _, ds := range e.entities.Entities(g, graph.Dataset) {
		for _, p := range []quad.IRI{e.readTitle, e.readDescription} {
			v, ok := g.Value(ds, p)
			if !ok {
				continue
			}
			if grade, ok := text.FleschKincaidGrade(graph.Lexical(v)); ok {
				grades = append(grades, grade)
			}
		}
	}
	if len(grades) == 0 {
		clog.Infof("readability: no text found")
		return undefined(Readability, LowerIsBetter, "no text found")
	}
	return defined(Readability, LowerIsBetter, math.Max(0, math.Min(100, mean(grades))))
}
