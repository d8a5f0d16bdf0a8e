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
	"math"
	"strings"
	"unicode"
)

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Syllables estimates the number of syllables of an English word by counting
// vowel groups. A trailing silent "e" is not counted. Every word has at least
// one syllable.
func Syllables(word string) int {
	w := strings.ToLower(word)
	n, prev := 0, false
	for _, r := range w {
		v := isVowel(r)
		if v && !prev {
			n++
		}
		prev = v
	}
	if n > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		n--
	}
	if n == 0 {
		n = 1
	}
	return n
}

// Counts holds the sentence, word and syllable counts of a text.
type Counts struct {
	Sentences int
	Words     int
	Syllables int
}

// Count computes the counts used by the readability formulas.
func Count(s string) Counts {
	var c Counts
	for _, sent := range Sentences(s) {
		words := Words(sent)
		if len(words) == 0 {
			continue
		}
		c.Sentences++
		for _, w := range words {
			if !containsLetter(w) {
				// numbers count as words of one syllable
				c.Words++
				c.Syllables++
				continue
			}
			c.Words++
			c.Syllables += Syllables(w)
		}
	}
	return c
}

func containsLetter(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// FleschKincaidGrade returns the Flesch-Kincaid grade level of s,
//
//	0.39 * words/sentences + 11.8 * syllables/words - 15.59
//
// rounded to one decimal. The second result is false if s has no words.
func FleschKincaidGrade(s string) (float64, bool) {
	c := Count(s)
	if c.Words == 0 || c.Sentences == 0 {
		return 0, false
	}
	g := 0.39*float64(c.Words)/float64(c.Sentences) +
		11.8*float64(c.Syllables)/float64(c.Words) - 15.59
	return math.Round(g*10) / 10, true
}
