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
	"strconv"
	"time"

	"github.com/cayleygraph/quad"
)

// Lexical returns the lexical form of a value: the IRI itself, the blank node
// id, or the literal text without quotes, language tag or datatype.
//
//	Lexical(quad.IRI("http://example.org/a"))                  // "http://example.org/a"
//	Lexical(quad.LangString{Value: "title", Lang: "en"})       // "title"
//	Lexical(quad.TypedString{Value: "42", Type: "xsd:integer"}) // "42"
func Lexical(v quad.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case quad.IRI:
		return string(v)
	case quad.BNode:
		return string(v)
	case quad.String:
		return string(v)
	case quad.LangString:
		return string(v.Value)
	case quad.TypedString:
		return string(v.Value)
	case quad.Int:
		return strconv.FormatInt(int64(v), 10)
	case quad.Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case quad.Bool:
		return strconv.FormatBool(bool(v))
	case quad.Time:
		return time.Time(v).Format(time.RFC3339Nano)
	}
	return quad.StringOf(v)
}

// IsLiteral reports whether v is a literal rather than a node reference.
func IsLiteral(v quad.Value) bool {
	switch v.(type) {
	case nil, quad.IRI, quad.BNode:
		return false
	}
	return true
}
