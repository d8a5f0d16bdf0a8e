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
	"fmt"
	"strings"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
)

// Timestamp layouts accepted for modification dates.
var timestampLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// TimestampError is returned for a modification date in an unknown layout.
type TimestampError struct {
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("cannot parse timestamp %q: expected YYYY-MM-DD or an RFC 3339 date-time", e.Value)
}

// ParseTimestamp parses a date or date-time literal.
func ParseTimestamp(v quad.Value) (time.Time, error) {
	if t, ok := v.(quad.Time); ok {
		return time.Time(t), nil
	}
	s := strings.TrimSpace(graph.Lexical(v))
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &TimestampError{Value: s}
}

// Freshness is the binary timeliness classification of a catalog.
type Freshness struct {
	Fresh    bool      `json:"fresh" yaml:"fresh"`
	Catalog  string    `json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Modified time.Time `json:"modified,omitempty" yaml:"modified,omitempty"`
	Notice   string    `json:"notice,omitempty" yaml:"notice,omitempty"`
}

// Score maps fresh to 100 and stale to 0.
func (f Freshness) Score() Score {
	s := defined(Timeliness, HigherIsBetter, 0)
	if f.Fresh {
		s.Value = 100
	}
	s.Notice = f.Notice
	return s
}

// Timeliness classifies the first catalog as fresh if its modification date
// is strictly after now minus the freshness window. A graph without a
// catalog or a modification date is not fresh.
func (e *Engine) Timeliness(g *graph.Graph) (Freshness, error) {
	defer observe(Timeliness, time.Now())
	cats := e.entities.Entities(g, graph.Catalog)
	if len(cats) == 0 {
		clog.Infof("timeliness: no catalog found")
		return Freshness{Notice: "no catalog found"}, nil
	}
	f := Freshness{Catalog: graph.Lexical(cats[0])}
	v, ok := g.Value(cats[0], e.modified)
	if !ok {
		clog.Infof("timeliness: catalog %s has no modification date", f.Catalog)
		f.Notice = "no modification date found"
		return f, nil
	}
	t, err := ParseTimestamp(v)
	if err != nil {
		return f, err
	}
	f.Modified = t
	f.Fresh = t.After(e.now().Add(-e.window))
	return f, nil
}
