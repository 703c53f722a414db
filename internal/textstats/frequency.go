package textstats

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minWordLen is the shortest normalized word that is counted.
const minWordLen = 2

// WordCount is one entry of the frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

const asciiPunct = `\'!"#$%&()*+,-./:;<=>?@[]^_` + "`" + `{|}~`

// isStripped reports whether r is removed during normalization: General
// Punctuation (U+2000-U+206F), Supplemental Punctuation (U+2E00-U+2E7F) and
// ASCII punctuation. All other letters, including non-Latin scripts, survive.
func isStripped(r rune) bool {
	switch {
	case r >= 0x2000 && r <= 0x206F:
		return true
	case r >= 0x2E00 && r <= 0x2E7F:
		return true
	case r < utf8.RuneSelf:
		return strings.ContainsRune(asciiPunct, r)
	}
	return false
}

// Normalizer lowercases tokens and strips punctuation. A Normalizer is not
// safe for concurrent use.
type Normalizer struct {
	lower cases.Caser
}

// NewNormalizer returns a Normalizer using language-neutral Unicode casing.
func NewNormalizer() *Normalizer {
	return &Normalizer{lower: cases.Lower(language.Und)}
}

// Normalize returns the frequency key for token, which may be empty.
func (n *Normalizer) Normalize(token string) string {
	lowered := n.lower.String(token)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if isStripped(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimFunc(b.String(), isSpace)
}

// ComputeFrequency counts normalized words of at least two runes and returns
// them by descending count. Equal counts keep first-seen order.
func ComputeFrequency(text string) []WordCount {
	norm := NewNormalizer()
	index := make(map[string]int)
	words := make([]WordCount, 0)

	for _, tok := range Tokens(text) {
		word := norm.Normalize(tok)
		if utf8.RuneCountInString(word) < minWordLen {
			continue
		}
		if i, ok := index[word]; ok {
			words[i].Count++
			continue
		}
		index[word] = len(words)
		words = append(words, WordCount{Word: word, Count: 1})
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Count > words[j].Count
	})
	return words
}
