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

// Package command implements the catalogqa subcommands.
package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/catalogqa/graph"
	"github.com/cayleygraph/catalogqa/internal/config"
	"github.com/cayleygraph/catalogqa/internal/load"
	"github.com/cayleygraph/catalogqa/internal/report"
	"github.com/cayleygraph/catalogqa/quality"
)

// KeyOutput is the output format key; the --output flag is bound to it.
const KeyOutput = "output.format"

const (
	flagOutput      = "output"
	flagInputFormat = "input-format"
	flagCPUProfile  = "cpuprofile"
	flagMemProfile  = "memprofile"
)

// RegisterGlobalFlags adds the flags shared by every subcommand to the
// root command and binds them to their configuration keys.
func RegisterGlobalFlags(cmd *cobra.Command) {
	var out []string
	for _, f := range report.Formats() {
		out = append(out, string(f))
	}
	flags := cmd.PersistentFlags()
	flags.StringP(flagOutput, "o", string(report.Text), `output format ("`+strings.Join(out, `", "`)+`")`)
	flags.String(flagInputFormat, "", `input format instead of auto-detection ("`+strings.Join(load.Formats(), `", "`)+`")`)
	flags.String(flagCPUProfile, "", "path to output CPU profile")
	flags.String(flagMemProfile, "", "path to output memory profile")
	viper.BindPFlag(KeyOutput, flags.Lookup(flagOutput))
	viper.BindPFlag(config.KeyLoadFormat, flags.Lookup(flagInputFormat))
}

func getContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		select {
		case <-ch:
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()
	return ctx, cancel
}

func loadConfig() (*config.Config, error) {
	return config.New(viper.GetViper())
}

func newEngine() (*quality.Engine, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return c.Engine()
}

func loadGraph(path string) (*graph.Graph, error) {
	return load.File(path, viper.GetString(config.KeyLoadFormat))
}

func loadGraphs(paths ...string) ([]*graph.Graph, error) {
	out := make([]*graph.Graph, 0, len(paths))
	for _, p := range paths {
		g, err := loadGraph(p)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func newPrinter(cmd *cobra.Command, e *quality.Engine) (*report.Printer, error) {
	f, err := report.ParseFormat(viper.GetString(KeyOutput))
	if err != nil {
		return nil, err
	}
	p := &report.Printer{W: cmd.OutOrStdout(), Format: f}
	if e != nil {
		p.Namespaces = e.Namespaces()
	}
	return p, nil
}

// evaluation is the common setup of single-graph commands.
type evaluation struct {
	engine  *quality.Engine
	graph   *graph.Graph
	printer *report.Printer
}

func setup(cmd *cobra.Command, path string) (*evaluation, error) {
	e, err := newEngine()
	if err != nil {
		return nil, err
	}
	p, err := newPrinter(cmd, e)
	if err != nil {
		return nil, err
	}
	g, err := loadGraph(path)
	if err != nil {
		return nil, err
	}
	return &evaluation{engine: e, graph: g, printer: p}, nil
}

type profileData struct {
	cpuProfile *os.File
	memPath    string
}

func mustSetupProfile(cmd *cobra.Command) profileData {
	p := profileData{}
	if mpp := cmd.Flag(flagMemProfile); mpp != nil {
		p.memPath = mpp.Value.String()
	}
	cpp := cmd.Flag(flagCPUProfile)
	if cpp == nil {
		return p
	}
	if v := cpp.Value.String(); v != "" {
		f, err := os.Create(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open CPU profile file %s\n", v)
			os.Exit(1)
		}
		p.cpuProfile = f
		pprof.StartCPUProfile(f)
	}
	return p
}

func mustFinishProfile(p profileData) {
	if p.cpuProfile != nil {
		pprof.StopCPUProfile()
		p.cpuProfile.Close()
	}
	if p.memPath != "" {
		f, err := os.Create(p.memPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open memory profile file %s\n", p.memPath)
			os.Exit(1)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write memory profile file %s\n", p.memPath)
		}
		f.Close()
	}
}
