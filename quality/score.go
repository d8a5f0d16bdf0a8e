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
	"strconv"
)

// Dimension names a quality dimension.
type Dimension string

const (
	Accuracy      Dimension = "accuracy"
	Completeness  Dimension = "completeness"
	Duplicates    Dimension = "duplicates"
	Links         Dimension = "links"
	Consistency   Dimension = "consistency"
	Compatibility Dimension = "compatibility"
	Similarity    Dimension = "similarity"
	Timeliness    Dimension = "timeliness"
	Licensing     Dimension = "licensing"
	Lineage       Dimension = "lineage"
	Readability   Dimension = "readability"
	Scalability   Dimension = "scalability"
)

// Polarity tells which end of the 0-100 scale is the good one.
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
)

func (p Polarity) String() string {
	if p == LowerIsBetter {
		return "lower-is-better"
	}
	return "higher-is-better"
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Polarity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "higher-is-better":
		*p = HigherIsBetter
	case "lower-is-better":
		*p = LowerIsBetter
	default:
		return fmt.Errorf("unknown polarity %q", b)
	}
	return nil
}

// Score is the result of one evaluator. A score whose denominator was zero
// is not Defined; its Value is meaningless and Notice says why.
type Score struct {
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Value     float64   `json:"value" yaml:"value"`
	Defined   bool      `json:"defined" yaml:"defined"`
	Polarity  Polarity  `json:"polarity" yaml:"polarity"`
	Notice    string    `json:"notice,omitempty" yaml:"notice,omitempty"`
}

func defined(d Dimension, p Polarity, v float64) Score {
	return Score{Dimension: d, Value: v, Defined: true, Polarity: p}
}

func undefined(d Dimension, p Polarity, notice string) Score {
	return Score{Dimension: d, Polarity: p, Notice: notice}
}

// Or returns the value of a defined score, def otherwise.
func (s Score) Or(def float64) float64 {
	if !s.Defined {
		return def
	}
	return s.Value
}

// Normalized returns the value on a higher-is-better scale.
// Undefined scores normalize to 0.
func (s Score) Normalized() float64 {
	if !s.Defined {
		return 0
	}
	if s.Polarity == LowerIsBetter {
		return 100 - s.Value
	}
	return s.Value
}

func (s Score) String() string {
	if !s.Defined {
		if s.Notice == "" {
			return "undefined"
		}
		return "undefined (" + s.Notice + ")"
	}
	v := strconv.FormatFloat(s.Value, 'f', 2, 64)
	if s.Dimension == Readability {
		// grade level
		return v
	}
	return v + "%"
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
