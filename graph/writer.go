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

	"github.com/cayleygraph/quad"
)

var _ quad.BatchWriter = (*Graph)(nil)

// WriteQuad implements quad.Writer. Duplicates are ignored; incomplete quads
// are an error.
func (g *Graph) WriteQuad(q quad.Quad) error {
	if !q.IsValid() {
		return fmt.Errorf("graph: invalid quad %v", q)
	}
	g.Add(q)
	return nil
}

// WriteQuads implements quad.BatchWriter.
func (g *Graph) WriteQuads(buf []quad.Quad) (int, error) {
	for i, q := range buf {
		if err := g.WriteQuad(q); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}
