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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/internal/report"
	"github.com/cayleygraph/catalogqa/voc"
)

const formatJSONLD = "jsonld"

func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a catalog grouped by subject and predicate.",
		Long: "Print a catalog grouped by subject and predicate.\n" +
			`With "--output jsonld" the catalog is printed as compact JSON-LD.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			ns := c.Namespaces()
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			return show(cmd, g, ns)
		},
	}
}

func show(cmd *cobra.Command, g *graph.Graph, ns *voc.Namespaces) error {
	out := viper.GetString(KeyOutput)
	if strings.EqualFold(out, formatJSONLD) {
		return report.WriteJSONLD(cmd.OutOrStdout(), g, ns)
	}
	f, err := report.ParseFormat(out)
	if err != nil {
		return err
	}
	p := &report.Printer{W: cmd.OutOrStdout(), Format: f, Namespaces: ns}
	return p.Describe(graph.Describe(g))
}
