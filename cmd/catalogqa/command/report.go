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

	"github.com/cayleygraph/catalogqa/quality"
)

func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Evaluate every quality dimension of a catalog.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := mustSetupProfile(cmd)
			defer mustFinishProfile(p)
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			var o quality.EvaluateOptions
			o.SkipLinks, _ = cmd.Flags().GetBool("skip-links")
			o.Scalability, _ = cmd.Flags().GetBool("scalability")
			o.PropertySet, _ = cmd.Flags().GetString("property-set")
			if other, _ := cmd.Flags().GetString("compare"); other != "" {
				if o.Compare, err = loadGraph(other); err != nil {
					return err
				}
			}
			ctx, cancel := getContext()
			defer cancel()
			r, err := ev.engine.Evaluate(ctx, ev.graph, o)
			if err != nil {
				return err
			}
			return ev.printer.Report(r)
		},
	}
	cmd.Flags().String("compare", "", "second catalog for compatibility and similarity")
	cmd.Flags().String("property-set", quality.SetDCAT, "property set for completeness")
	cmd.Flags().Bool("skip-links", false, "do not resolve links")
	cmd.Flags().Bool("scalability", false, "run the scalability probe")
	return cmd
}
