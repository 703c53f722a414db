package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Word  lipgloss.Style
	Error lipgloss.Style
	Box   lipgloss.Style
}

func newStyles(colors bool) styles {
	if !colors {
		plain := lipgloss.NewStyle()
		return styles{Title: plain, Label: plain, Value: plain, Muted: plain, Word: plain, Error: plain, Box: plain}
	}
	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Value: lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Word:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
	}
}

func renderReport(s styles, r report) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Document Statistics: "+r.FileName) + "\n")

	rows := [][2]string{
		{"Word Count", formatInt(r.WordCount)},
		{"Character Count", formatInt(r.CharCount)},
		{"Characters (No Spaces)", formatInt(r.CharCountNoSpaces)},
		{"Sentence Count", formatInt(r.SentenceCount)},
		{"Average Word Length", fmt.Sprintf("%.1f", r.AvgWordLength)},
	}
	var stats strings.Builder
	for i, row := range rows {
		if i > 0 {
			stats.WriteString("\n")
		}
		stats.WriteString(s.Label.Render(fmt.Sprintf("%-24s", row[0])) + s.Value.Render(row[1]))
	}
	b.WriteString(s.Box.Render(stats.String()) + "\n\n")

	heading := "Most Frequent Words"
	if r.ExcludeCommonWords {
		heading += " (common words excluded)"
	}
	b.WriteString(s.Title.Render(heading) + "\n")
	if len(r.FrequentWords) == 0 {
		b.WriteString(s.Muted.Render("  no words") + "\n")
		return b.String()
	}
	width := 0
	for _, w := range r.FrequentWords {
		width = max(width, lipgloss.Width(w.Word))
	}
	for i, w := range r.FrequentWords {
		pad := strings.Repeat(" ", width-lipgloss.Width(w.Word))
		b.WriteString(fmt.Sprintf("  %2d. %s%s  %s\n", i+1, s.Word.Render(w.Word), pad, s.Muted.Render(formatInt(w.Count))))
	}
	b.WriteString(s.Muted.Render(fmt.Sprintf("\n%s unique words, extracted by %s in %.0f ms", formatInt(r.UniqueWords), r.Provider, r.ExtractionMs)) + "\n")
	return b.String()
}

// formatInt groups digits in threes, like the browser's toLocaleString.
func formatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
