package textstats

import (
	"strings"
	"unicode/utf8"
)

// DisplayLimit is the number of frequency entries shown to the user.
const DisplayLimit = 20

// StopList is a set of lowercase words excluded from the displayed
// frequency table.
type StopList map[string]struct{}

// NewStopList builds a StopList from words.
func NewStopList(words ...string) StopList {
	s := make(StopList, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// EnglishStopWords holds common English function words.
var EnglishStopWords = NewStopList(
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has", "he",
	"in", "is", "it", "its", "of", "on", "that", "the", "to", "was", "were",
	"will", "with",
)

// Contains reports whether word is in the list, ignoring case.
func (s StopList) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Top returns at most limit entries of words. When excludeCommon is set,
// entries in the list are dropped unless they contain a non-ASCII rune.
// A limit <= 0 keeps every entry.
func (s StopList) Top(words []WordCount, excludeCommon bool, limit int) []WordCount {
	out := make([]WordCount, 0, min(len(words), max(limit, 0)))
	for _, w := range words {
		if limit > 0 && len(out) == limit {
			break
		}
		if excludeCommon && !hasNonASCII(w.Word) && s.Contains(w.Word) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// IsStopWord reports whether word is a common English function word.
func IsStopWord(word string) bool {
	return EnglishStopWords.Contains(word)
}

// TopWords filters words against EnglishStopWords.
func TopWords(words []WordCount, excludeCommon bool, limit int) []WordCount {
	return EnglishStopWords.Top(words, excludeCommon, limit)
}

func hasNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
