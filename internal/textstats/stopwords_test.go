package textstats

import (
	"fmt"
	"reflect"
	"testing"
)

func TestTopWordsExcludesStopWords(t *testing.T) {
	words := []WordCount{
		{Word: "the", Count: 9},
		{Word: "日本語", Count: 5},
		{Word: "cat", Count: 3},
		{Word: "and", Count: 2},
	}

	got := TopWords(words, true, DisplayLimit)
	want := []WordCount{
		{Word: "日本語", Count: 5},
		{Word: "cat", Count: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected filtered words: %+v", got)
	}

	if got := TopWords(words, false, DisplayLimit); !reflect.DeepEqual(got, words) {
		t.Fatalf("expected unfiltered list, got %+v", got)
	}
}

func TestTopWordsKeepsNonASCIIMatchingStopWord(t *testing.T) {
	list := NewStopList("the", "日本語")
	words := []WordCount{{Word: "日本語", Count: 4}, {Word: "the", Count: 3}, {Word: "cat", Count: 1}}

	got := list.Top(words, true, DisplayLimit)
	want := []WordCount{{Word: "日本語", Count: 4}, {Word: "cat", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected filtered words: %+v", got)
	}
}

func TestTopWordsLimit(t *testing.T) {
	words := make([]WordCount, 0, 30)
	for i := 0; i < 30; i++ {
		words = append(words, WordCount{Word: fmt.Sprintf("word%02d", i), Count: 30 - i})
	}
	words = append([]WordCount{{Word: "the", Count: 99}}, words...)

	got := TopWords(words, true, DisplayLimit)
	if len(got) != DisplayLimit {
		t.Fatalf("expected %d entries, got %d", DisplayLimit, len(got))
	}
	if got[0].Word != "word00" || got[DisplayLimit-1].Word != "word19" {
		t.Fatalf("unexpected window: first=%s last=%s", got[0].Word, got[DisplayLimit-1].Word)
	}

	if got := TopWords(words, false, DisplayLimit); got[0].Word != "the" || len(got) != DisplayLimit {
		t.Fatalf("unexpected unfiltered window: %+v", got)
	}
	if got := TopWords(words, false, 0); len(got) != len(words) {
		t.Fatalf("expected all %d entries without limit, got %d", len(words), len(got))
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "The", "AND", "with"} {
		if !IsStopWord(w) {
			t.Fatalf("expected %q to be a stop word", w)
		}
	}
	for _, w := range []string{"cat", "日本語", ""} {
		if IsStopWord(w) {
			t.Fatalf("expected %q not to be a stop word", w)
		}
	}
}
