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

// Package text implements the text analytics used to compare and grade free
// text fields: sentence segmentation, word tokenization, stop words, Jaccard
// similarity and the Flesch-Kincaid grade level.
package text

import (
	"strings"
	"sync"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jdkato/prose/v2"
	"github.com/neurosnap/sentences"
	punktenglish "github.com/neurosnap/sentences/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cayleygraph/catalogqa/clog"
)

var (
	punktOnce sync.Once
	punkt     *sentences.DefaultSentenceTokenizer
)

func sentenceTokenizer() *sentences.DefaultSentenceTokenizer {
	punktOnce.Do(func() {
		var err error
		if punkt, err = punktenglish.NewSentenceTokenizer(nil); err != nil {
			clog.Errorf("text: cannot load sentence model: %v", err)
			punkt = nil
		}
	})
	return punkt
}

// Sentences splits s into sentences with the English Punkt model.
// Empty sentences are dropped.
func Sentences(s string) []string {
	tok := sentenceTokenizer()
	if tok == nil {
		if s = strings.TrimSpace(s); s == "" {
			return nil
		}
		return []string{s}
	}
	var out []string
	for _, sent := range tok.Tokenize(s) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Words tokenizes s and returns the runs of letters and digits of every
// token. Punctuation is dropped.
func Words(s string) []string {
	doc, err := prose.NewDocument(s,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		clog.Warningf("text: cannot tokenize %q: %v", s, err)
		return nil
	}
	var out []string
	for _, tok := range doc.Tokens() {
		out = append(out, strings.FieldsFunc(tok.Text, func(r rune) bool {
			return !isWordRune(r)
		})...)
	}
	return out
}

// Tokenizer turns free text into a set of normalized tokens.
// It is not safe for concurrent use.
type Tokenizer struct {
	stop  StopList
	lower cases.Caser
}

// NewTokenizer creates a tokenizer dropping the given stop words.
// A nil list keeps every word.
func NewTokenizer(stop StopList) *Tokenizer {
	if stop == nil {
		stop = mapset.NewThreadUnsafeSet[string]()
	}
	return &Tokenizer{stop: stop, lower: cases.Lower(language.Und)}
}

// Tokens segments s into sentences, lowercases and tokenizes every sentence
// and returns the set of words that are not stop words.
func (t *Tokenizer) Tokens(s string) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	for _, sent := range Sentences(norm.NFKC.String(s)) {
		for _, w := range Words(t.lower.String(sent)) {
			if !t.stop.Contains(w) {
				out.Add(w)
			}
		}
	}
	return out
}

// Tokens is a shorthand for NewTokenizer(stop).Tokens(s).
func Tokens(s string, stop StopList) mapset.Set[string] {
	return NewTokenizer(stop).Tokens(s)
}
