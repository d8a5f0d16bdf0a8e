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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/internal/config"
	"github.com/cayleygraph/catalogqa/quality"
)

func newScoreCmd(name, short string, eval func(*quality.Engine, *graph.Graph) quality.Score) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			return ev.printer.Score(name, eval(ev.engine, ev.graph))
		},
	}
}

func NewDuplicatesCmd() *cobra.Command {
	return newScoreCmd("duplicates", "Percentage of duplicated dataset and distribution identities.",
		(*quality.Engine).Duplicates)
}

func NewLicensingCmd() *cobra.Command {
	return newScoreCmd("licensing", "Percentage of datasets with a license.",
		(*quality.Engine).Licensing)
}

func NewReadabilityCmd() *cobra.Command {
	return newScoreCmd("readability", "Mean Flesch-Kincaid grade of dataset titles and descriptions.",
		(*quality.Engine).Readability)
}

func NewAccuracyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accuracy <file>",
		Short: "Combine core completeness, duplicates and broken links.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			ctx, cancel := getContext()
			defer cancel()
			r, err := ev.engine.Accuracy(ctx, ev.graph)
			if err != nil {
				return err
			}
			return ev.printer.Accuracy(r)
		},
	}
	cmd.Flags().Bool("normalize", false, "average polarity-normalized scores instead of raw percentages")
	viper.BindPFlag(config.KeyAccuracyNormalize, cmd.Flags().Lookup("normalize"))
	return cmd
}

func NewCompletenessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completeness <file> [property-set]",
		Short: "Mean share of required properties present on catalogs, datasets and distributions.",
		Long: "Mean share of required properties present on catalogs, datasets and distributions.\n" +
			"The property set is one of dcat (default), dct, core or a configured set.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := quality.SetDCAT
			if len(args) == 2 {
				set = args[1]
			}
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			s, err := ev.engine.Completeness(ev.graph, set)
			if err != nil {
				return err
			}
			return ev.printer.Score(fmt.Sprintf("completeness (%s)", set), s)
		},
	}
}

func NewLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links <file>",
		Short: "Percentage of IRI objects that do not resolve.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			ctx, cancel := getContext()
			defer cancel()
			verbose, _ := cmd.Flags().GetBool("verbose")
			return ev.printer.Links(ev.engine.CheckLinks(ctx, ev.graph), verbose)
		},
	}
	cmd.Flags().BoolP("verbose", "V", false, "list every broken reference")
	cmd.Flags().Int("workers", 0, "number of concurrent requests")
	cmd.Flags().Duration("timeout", 0, "timeout of a single request")
	viper.BindPFlag(config.KeyLinksWorkers, cmd.Flags().Lookup("workers"))
	viper.BindPFlag(config.KeyLinksTimeout, cmd.Flags().Lookup("timeout"))
	return cmd
}

func NewConsistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency <file> <catalog|dataset|distribution>",
		Short: "Percentage of properties of one entity type with conflicting values.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := graph.ParseKind(args[1])
			if err != nil {
				return err
			}
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			s, err := ev.engine.Consistency(ev.graph, k)
			if err != nil {
				return err
			}
			return ev.printer.Score(fmt.Sprintf("inconsistencies (%s)", k), s)
		},
	}
}

func NewTimelinessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeliness <file>",
		Short: "Whether the catalog was modified within the freshness window.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			f, err := ev.engine.Timeliness(ev.graph)
			if err != nil {
				return err
			}
			return ev.printer.Freshness(f)
		},
	}
	cmd.Flags().Duration("window", 0, "freshness window (default one year)")
	viper.BindPFlag(config.KeyTimelinessWindow, cmd.Flags().Lookup("window"))
	return cmd
}

func NewLineageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lineage <file>",
		Short: "Score lineage and provenance information.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			return ev.printer.Lineage(ev.engine.Lineage(ev.graph))
		},
	}
}

func NewScalabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scalability <file>",
		Short: "Compare the cost of a mutation on the catalog with a one-triple graph.",
		Long: "Compare the cost of a mutation on the catalog with a one-triple graph.\n" +
			"The probe measures wall-clock time; results may vary between runs.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := mustSetupProfile(cmd)
			defer mustFinishProfile(p)
			ev, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := ev.engine.Scalability(ev.graph)
			if err != nil {
				return err
			}
			return ev.printer.Scalability(r)
		},
	}
	cmd.Flags().Int("trials", 0, "number of timed trials")
	viper.BindPFlag(config.KeyScalabilityTrials, cmd.Flags().Lookup("trials"))
	return cmd
}
