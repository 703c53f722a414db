// Package textstats computes word, character and sentence statistics and a
// word-frequency table for extracted document text.
package textstats

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Metrics holds the scalar statistics for a text.
type Metrics struct {
	WordCount         int     `json:"wordCount"`
	CharCount         int     `json:"charCount"`
	CharCountNoSpaces int     `json:"charCountNoSpaces"`
	SentenceCount     int     `json:"sentenceCount"`
	AvgWordLength     float64 `json:"avgWordLength"`
}

// isSpace matches the JavaScript \s class: unicode.IsSpace plus U+FEFF,
// minus U+0085 (NEL).
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Tokens splits text on runs of whitespace. Empty segments are never returned.
func Tokens(text string) []string {
	return strings.FieldsFunc(text, isSpace)
}

// ComputeMetrics derives the scalar statistics for text. Character counts are
// in code points. AvgWordLength is 0 when the text holds no words.
func ComputeMetrics(text string) Metrics {
	tokens := Tokens(text)

	totalLen := 0
	for _, tok := range tokens {
		totalLen += utf8.RuneCountInString(tok)
	}

	charCount := 0
	spaces := 0
	for _, r := range text {
		charCount++
		if isSpace(r) {
			spaces++
		}
	}

	m := Metrics{
		WordCount:         len(tokens),
		CharCount:         charCount,
		CharCountNoSpaces: charCount - spaces,
		SentenceCount:     countSentences(text),
	}
	if m.WordCount > 0 {
		m.AvgWordLength = float64(totalLen) / float64(m.WordCount)
	}
	return m
}

// countSentences splits on one or more of . ! ? followed by one or more
// whitespace runes and counts every resulting segment, empty ones included.
// "Hello. " is therefore two sentences and "Dr. Smith" splits, while a final
// terminator without trailing whitespace adds nothing.
func countSentences(text string) int {
	if text == "" {
		return 0
	}

	count := 1
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isTerminator(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && isTerminator(runes[j]) {
			j++
		}
		k := j
		for k < len(runes) && isSpace(runes[k]) {
			k++
		}
		if k > j {
			count++
		}
		i = k
	}
	return count
}
