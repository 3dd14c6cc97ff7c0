// Package render produces text and Markdown output from pwcheck reports.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/pwcheck/internal/report"
	"github.com/dshills/pwcheck/internal/strength"
)

const strongMessage = "Your password is strong!"

// Text renders a single result in the classic console layout.
func Text(c *report.Check) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Password Strength: %s (Score: %d/%d)\n", c.Result.Strength, c.Result.Score, c.MaxScore)
	if len(c.Result.Suggestions) > 0 {
		b.WriteString("Suggestions for improvement:\n")
		writeBullets(&b, c.Result.Suggestions, "")
	} else {
		b.WriteString(strongMessage + "\n")
	}

	return b.String()
}

// Markdown renders a single result as a Markdown report.
func Markdown(c *report.Check) string {
	var b strings.Builder

	b.WriteString("# Password Check\n\n")
	fmt.Fprintf(&b, "**Strength:** %s\n", c.Result.Strength)
	fmt.Fprintf(&b, "**Score:** %d / %d\n\n", c.Result.Score, c.MaxScore)

	if len(c.Result.Suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		writeBullets(&b, c.Result.Suggestions, "")
		b.WriteString("\n")
	} else {
		b.WriteString("No suggestions.\n\n")
	}

	return b.String()
}

// BatchText renders a batch report for the console.
func BatchText(r *report.Batch) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s (%d entries)\n", r.Input.File, r.Input.Entries)
	writeSummaryLine(&b, r.Summary)
	b.WriteString("\n")

	for _, e := range r.Entries {
		fmt.Fprintf(&b, "L%d %s: %s (Score: %d/%d)\n", e.Line, e.Masked, e.Strength, e.Score, r.MaxScore)
		writeBullets(&b, e.Suggestions, "  ")
	}

	return b.String()
}

// BatchMarkdown renders a batch report as Markdown, grouped by strength.
func BatchMarkdown(r *report.Batch) string {
	var b strings.Builder

	b.WriteString("# Password Batch Check\n\n")
	fmt.Fprintf(&b, "**File:** %s (`%s`)\n", r.Input.File, r.Input.Hash)
	fmt.Fprintf(&b, "**Entries:** %d\n", r.Summary.Total)
	fmt.Fprintf(&b, "**Breakdown:** %d strong, %d medium, %d weak\n", r.Summary.StrongCount, r.Summary.MediumCount, r.Summary.WeakCount)
	fmt.Fprintf(&b, "**Average score:** %.2f / %d\n\n", r.Summary.AverageScore, r.MaxScore)

	sections := []struct {
		title string
		level strength.Strength
	}{
		{"Weak", strength.Weak},
		{"Medium", strength.Medium},
		{"Strong", strength.Strong},
	}
	for _, sec := range sections {
		entries := filterEntries(r.Entries, sec.level)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sec.title)
		for _, e := range entries {
			renderEntry(&b, e, r.MaxScore)
		}
	}

	if len(r.Entries) == 0 {
		b.WriteString("No passwords found.\n\n")
	}

	return b.String()
}

func writeSummaryLine(b *strings.Builder, s strength.Summary) {
	fmt.Fprintf(b, "Summary: %d strong, %d medium, %d weak (average %.2f)\n",
		s.StrongCount, s.MediumCount, s.WeakCount, s.AverageScore)
}

func writeBullets(b *strings.Builder, items []string, indent string) {
	for _, s := range items {
		fmt.Fprintf(b, "%s- %s\n", indent, s)
	}
}

func filterEntries(entries []report.Entry, level strength.Strength) []report.Entry {
	var result []report.Entry
	for _, e := range entries {
		if e.Strength == level {
			result = append(result, e)
		}
	}
	return result
}

func renderEntry(b *strings.Builder, e report.Entry, maxScore int) {
	fmt.Fprintf(b, "### L%d `%s` [%d / %d]\n\n", e.Line, e.Masked, e.Score, maxScore)
	if len(e.Suggestions) == 0 {
		b.WriteString("No suggestions.\n\n")
		return
	}
	writeBullets(b, e.Suggestions, "")
	b.WriteString("\n")
}
