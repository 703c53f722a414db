package textstats

import "golang.org/x/sync/errgroup"

// Result is the full analysis of one extracted text.
type Result struct {
	Metrics
	FrequentWords []WordCount `json:"frequentWords"`
	RawText       string      `json:"rawText"`
}

// Analyze computes metrics and word frequency for text. The two passes run
// concurrently over the same immutable string.
func Analyze(text string) Result {
	var (
		metrics Metrics
		words   []WordCount
	)
	var g errgroup.Group
	g.Go(func() error {
		metrics = ComputeMetrics(text)
		return nil
	})
	g.Go(func() error {
		words = ComputeFrequency(text)
		return nil
	})
	_ = g.Wait()

	return Result{
		Metrics:       metrics,
		FrequentWords: words,
		RawText:       text,
	}
}
