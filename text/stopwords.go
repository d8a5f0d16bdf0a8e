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

package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	mapset "github.com/deckarep/golang-set/v2"
)

// StopList reports whether every given word is a stop word.
// A mapset.Set[string] is a StopList.
type StopList interface {
	Contains(words ...string) bool
}

// UnknownLanguageError is returned when no stop-word list exists for a language.
type UnknownLanguageError struct {
	Language string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("text: no stop words for language %q", e.Language)
}

// stopWords are the lists shipped with catalogqa. The English list is the
// NLTK one, which the similarity scores are calibrated on.
var stopWords = map[string][]string{
	"english": {
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
		"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
		"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
		"hers", "herself", "it", "it's", "its", "itself", "they", "them",
		"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
		"that", "that'll", "these", "those", "am", "is", "are", "was", "were",
		"be", "been", "being", "have", "has", "had", "having", "do", "does",
		"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
		"as", "until", "while", "of", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before", "after",
		"above", "below", "to", "from", "up", "down", "in", "out", "on", "off",
		"over", "under", "again", "further", "then", "once", "here", "there",
		"when", "where", "why", "how", "all", "any", "both", "each", "few",
		"more", "most", "other", "some", "such", "no", "nor", "not", "only",
		"own", "same", "so", "than", "too", "very", "s", "t", "can", "will",
		"just", "don", "don't", "should", "should've", "now", "d", "ll", "m",
		"o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
		"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn",
		"hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn",
		"mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
		"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won",
		"won't", "wouldn", "wouldn't",
	},
}

// isoCodes maps language names to the codes of the stopwords package.
var isoCodes = map[string]string{
	"arabic":     "ar",
	"bulgarian":  "bg",
	"czech":      "cs",
	"danish":     "da",
	"dutch":      "nl",
	"finnish":    "fi",
	"french":     "fr",
	"german":     "de",
	"greek":      "el",
	"hungarian":  "hu",
	"indonesian": "id",
	"italian":    "it",
	"latvian":    "lv",
	"norwegian":  "no",
	"persian":    "fa",
	"polish":     "pl",
	"portuguese": "pt",
	"romanian":   "ro",
	"russian":    "ru",
	"slovak":     "sk",
	"spanish":    "es",
	"swedish":    "sv",
	"turkish":    "tr",
}

// cleaner is a StopList backed by the stopwords package for one language code.
type cleaner string

func (c cleaner) Contains(words ...string) bool {
	for _, w := range words {
		if !containsLetter(w) {
			return false
		}
		if strings.TrimSpace(stopwords.CleanString(w, string(c), false)) != "" {
			return false
		}
	}
	return true
}

// Languages returns the languages with a stop-word list, sorted.
func Languages() []string {
	out := make([]string, 0, len(stopWords)+len(isoCodes))
	for l := range stopWords {
		out = append(out, l)
	}
	for l := range isoCodes {
		if _, ok := stopWords[l]; !ok {
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// StopWords returns the stop words of a language. Shipped lists are returned
// as a fresh set; other languages are looked up in the stopwords package.
func StopWords(language string) (StopList, error) {
	name := strings.ToLower(language)
	if words, ok := stopWords[name]; ok {
		return mapset.NewThreadUnsafeSet(words...), nil
	}
	if code, ok := isoCodes[name]; ok {
		return cleaner(code), nil
	}
	return nil, &UnknownLanguageError{Language: language}
}
