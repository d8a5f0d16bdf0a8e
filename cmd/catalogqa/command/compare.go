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

package command

import (
	"github.com/spf13/cobra"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/quality"
)

func newCompareCmd(name, short string, eval func(*quality.Engine, *graph.Graph, *graph.Graph) quality.Score) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file1> <file2>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd, e)
			if err != nil {
				return err
			}
			gs, err := loadGraphs(args[0], args[1])
			if err != nil {
				return err
			}
			return p.Score(name, eval(e, gs[0], gs[1]))
		},
	}
}

func NewCompatibilityCmd() *cobra.Command {
	return newCompareCmd("compatibility", "Percentage of the triples of the first catalog found in the second.",
		(*quality.Engine).Compatibility)
}

func NewSimilarityCmd() *cobra.Command {
	return newCompareCmd("similarity", "Text similarity of the titles and descriptions of two catalogs.",
		(*quality.Engine).Similarity)
}
