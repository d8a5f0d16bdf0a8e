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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/internal/config"
	"github.com/cayleygraph/catalogqa/version"
)

const (
	flagConfig      = "config"
	flagEnvFile     = "env-file"
	flagMetricsFile = "metrics-file"
)

// NewRootCmd creates the catalogqa command with every subcommand.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogqa",
		Short:         "catalogqa evaluates the quality of DCAT metadata catalogs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			clog.Infof("catalogqa version: %s (%s)", version.Version, version.GitHash)
			env, _ := cmd.Flags().GetString(flagEnvFile)
			if err := config.LoadDotEnv(env); err != nil {
				return err
			}
			conf, _ := cmd.Flags().GetString(flagConfig)
			return config.Setup(viper.GetViper(), conf)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString(flagMetricsFile)
			if path == "" {
				return nil
			}
			clog.Infof("writing metrics to %s", path)
			return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
		},
	}
	root.PersistentFlags().StringP(flagConfig, "c", "", "path to an explicit configuration file")
	root.PersistentFlags().String(flagEnvFile, ".env", "path to a file with environment variables")
	root.PersistentFlags().String(flagMetricsFile, "", "write evaluation metrics to this file in the Prometheus text format")
	RegisterGlobalFlags(root)

	root.AddCommand(
		NewVersionCmd(),
		NewAccuracyCmd(),
		NewCompletenessCmd(),
		NewDuplicatesCmd(),
		NewLinksCmd(),
		NewConsistencyCmd(),
		NewCompatibilityCmd(),
		NewSimilarityCmd(),
		NewTimelinessCmd(),
		NewLicensingCmd(),
		NewLineageCmd(),
		NewReadabilityCmd(),
		NewScalabilityCmd(),
		NewShowCmd(),
		NewReportCmd(),
	)
	return root
}
