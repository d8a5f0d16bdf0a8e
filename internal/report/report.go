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

// Package report renders evaluation results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/cayleygraph/catalogqa/linkcheck"
	"github.com/cayleygraph/catalogqa/quality"
	"github.com/cayleygraph/catalogqa/voc"
)

// Format is an output format.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the output formats.
func Formats() []Format {
	return []Format{Text, JSON, YAML}
}

// ParseFormat returns the format of the given name; empty is Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q: expected text, json or yaml", s)
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q has no structured encoding", f)
}

// Printer renders results to W.
type Printer struct {
	W      io.Writer
	Format Format
	// Namespaces shortens IRIs in text output; nil prints full IRIs.
	Namespaces *voc.Namespaces
	// Now is used for relative times; time.Now if nil.
	Now func() time.Time
}

func (p *Printer) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Printer) structured() bool {
	return p.Format == JSON || p.Format == YAML
}

func (p *Printer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(p.W, format, args...)
	return err
}

type namedScore struct {
	Name  string        `json:"name" yaml:"name"`
	Score quality.Score `json:"score" yaml:"score"`
}

// Score prints one score under a label, such as "completeness (dcat)".
func (p *Printer) Score(label string, s quality.Score) error {
	if p.structured() {
		return Encode(p.W, p.Format, namedScore{Name: label, Score: s})
	}
	if err := p.printf("%s: %s\n", label, s); err != nil {
		return err
	}
	if s.Defined && s.Notice != "" {
		return p.printf("  %s\n", s.Notice)
	}
	return nil
}

// Accuracy prints the composite accuracy and its components.
func (p *Printer) Accuracy(r quality.AccuracyResult) error {
	if p.structured() {
		return Encode(p.W, p.Format, r)
	}
	tw := tabwriter.NewWriter(p.W, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "accuracy:\t%s\n", r.Score)
	fmt.Fprintf(tw, "  completeness:\t%s\n", r.Completeness)
	fmt.Fprintf(tw, "  duplicates:\t%s\n", r.Duplicates)
	fmt.Fprintf(tw, "  broken links:\t%s\n", r.Links)
	if r.Score.Notice != "" {
		fmt.Fprintf(tw, "  note:\t%s\n", r.Score.Notice)
	}
	return tw.Flush()
}

// Freshness prints the timeliness classification.
func (p *Printer) Freshness(f quality.Freshness) error {
	if p.structured() {
		return Encode(p.W, p.Format, f)
	}
	state := "stale"
	if f.Fresh {
		state = "fresh"
	}
	if f.Modified.IsZero() {
		return p.printf("timeliness: %s (%s)\n", state, f.Notice)
	}
	return p.printf("timeliness: %s, %s modified %s (%s)\n", state,
		p.iri(f.Catalog), f.Modified.Format("2006-01-02"), humanize.RelTime(f.Modified, p.now(), "ago", "from now"))
}

// Lineage prints the lineage score and the signals found.
func (p *Printer) Lineage(r quality.LineageResult) error {
	if p.structured() {
		return Encode(p.W, p.Format, r)
	}
	tw := tabwriter.NewWriter(p.W, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "lineage:\t%s\n", r.Score)
	for _, sig := range []struct {
		name string
		ok   bool
	}{
		{"class or property hierarchy", r.Signals.Hierarchy},
		{"classes or properties with a super class", r.Signals.Ancestors},
		{"classes or properties with a sub class", r.Signals.Descendants},
		{"provenance entities", r.Signals.Entity},
		{"activities with inputs", r.Signals.Used},
		{"activities with agents", r.Signals.Associated},
	} {
		fmt.Fprintf(tw, "  %s:\t%s\n", sig.name, yesNo(sig.ok))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Scalability prints the probe outcome with its timings.
func (p *Printer) Scalability(r quality.ScalabilityResult) error {
	if p.structured() {
		return Encode(p.W, p.Format, r)
	}
	state := "not scalable"
	if r.Scalable {
		state = "scalable"
	}
	tw := tabwriter.NewWriter(p.W, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "scalability:\t%s\n", state)
	fmt.Fprintf(tw, "  triples:\t%s\n", humanize.Comma(int64(r.Size)))
	fmt.Fprintf(tw, "  reference median / p90:\t%v / %v\n", r.Small.Median, r.Small.P90)
	fmt.Fprintf(tw, "  catalog median / p90:\t%v / %v\n", r.Large.Median, r.Large.P90)
	fmt.Fprintf(tw, "  per triple:\t%v (limit %v)\n",
		time.Duration(r.PerUnit), time.Duration(float64(r.Small.Median)*r.Factor))
	return tw.Flush()
}

type linkView struct {
	IRI    string `json:"iri" yaml:"iri"`
	Status int    `json:"status,omitempty" yaml:"status,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newLinkView(r linkcheck.Result) linkView {
	v := linkView{IRI: r.IRI, Status: r.Status}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

// Links prints the broken link percentage. With verbose set, every broken
// reference is listed once.
func (p *Printer) Links(rep quality.LinkReport, verbose bool) error {
	var broken []linkView
	if verbose {
		seen := make(map[string]bool)
		for _, r := range rep.Results {
			if r.Reachable() || seen[r.IRI] {
				continue
			}
			seen[r.IRI] = true
			broken = append(broken, newLinkView(r))
		}
	}
	if p.structured() {
		return Encode(p.W, p.Format, struct {
			quality.LinkReport `yaml:",inline"`
			BrokenLinks        []linkView `json:"broken_links,omitempty" yaml:"broken_links,omitempty"`
		}{rep, broken})
	}
	if err := p.printf("broken links: %s\n", rep.Score); err != nil {
		return err
	}
	if rep.Total > 0 {
		if err := p.printf("  %s of %s references broken\n",
			humanize.Comma(int64(rep.Broken)), humanize.Comma(int64(rep.Total))); err != nil {
			return err
		}
	}
	for _, b := range broken {
		msg := b.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", b.Status)
		}
		if err := p.printf("  %s: %s\n", b.IRI, msg); err != nil {
			return err
		}
	}
	return nil
}

// Report prints a whole-catalog evaluation.
func (p *Printer) Report(r *quality.Report) error {
	if p.structured() {
		return Encode(p.W, p.Format, r)
	}
	tw := tabwriter.NewWriter(p.W, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run:\t%s\n", r.RunID)
	fmt.Fprintf(tw, "triples:\t%s\n", humanize.Comma(int64(r.Triples)))
	fmt.Fprintf(tw, "duration:\t%v\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintln(tw)
	for _, e := range r.Entries {
		val := e.Score.String()
		if e.Error != "" {
			val = "error: " + e.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, val, polarity(e))
	}
	return tw.Flush()
}

func polarity(e quality.Entry) string {
	if e.Error != "" || !e.Score.Defined {
		return ""
	}
	return "(" + e.Score.Polarity.String() + ")"
}

func (p *Printer) iri(s string) string {
	if p.Namespaces == nil {
		return s
	}
	return p.Namespaces.ShortIRI(s)
}
