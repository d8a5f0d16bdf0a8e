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

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
)

// Licensing returns the percentage of datasets with at least one license.
func (e *Engine) Licensing(g *graph.Graph) Score {
	defer observe(Licensing, time.Now())
	datasets := e.entities.Entities(g, graph.Dataset)
	if len(datasets) == 0 {
		clog.Infof("licensing: no datasets found")
		return undefined(Licensing, HigherIsBetter, "no datasets found")
	}
	licensed := 0
	for _, ds := range datasets {
		if g.Has(ds, e.license, nil) {
			licensed++
		}
	}
	return defined(Licensing, HigherIsBetter, percent(licensed, len(datasets)))
}
