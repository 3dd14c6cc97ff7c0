// Package report defines the pwcheck output objects.
package report

import (
	"path/filepath"

	"github.com/dshills/pwcheck/internal/redact"
	"github.com/dshills/pwcheck/internal/strength"
	"github.com/dshills/pwcheck/internal/wordlist"
)

// Tool is the name recorded in every report.
const Tool = "pwcheck"

// Check is the output of evaluating a single password.
type Check struct {
	Tool     string          `json:"tool"`
	Version  string          `json:"version"`
	MaxScore int             `json:"max_score"`
	Result   strength.Result `json:"result"`
}

// Batch is the output of evaluating a password list.
type Batch struct {
	Tool     string           `json:"tool"`
	Version  string           `json:"version"`
	MaxScore int              `json:"max_score"`
	Input    Input            `json:"input"`
	Summary  strength.Summary `json:"summary"`
	Entries  []Entry          `json:"entries"`
}

// Input describes the evaluated file.
type Input struct {
	File    string `json:"file"`
	Hash    string `json:"hash"`
	Entries int    `json:"entries"`
	Sorted  bool   `json:"sorted"`
}

// Entry is one evaluated line. The password itself is never included.
type Entry struct {
	Line        int    `json:"line"`
	Masked      string `json:"masked"`
	Length      int    `json:"length"`
	Fingerprint string `json:"fingerprint,omitempty"`
	strength.Result
}

// NewCheck wraps a single result.
func NewCheck(version string, r strength.Result) *Check {
	return &Check{
		Tool:     Tool,
		Version:  version,
		MaxScore: strength.MaxScore,
		Result:   r,
	}
}

// BatchOptions controls how entries are presented in a batch report.
type BatchOptions struct {
	Reveal int
	Sorted bool
	// Fingerprinter keys entry fingerprints. Nil omits them.
	Fingerprinter *redact.Fingerprinter
}

// NewBatch builds a batch report from scored entries. When opts.Sorted is set
// the entries are ordered weakest first.
func NewBatch(version string, l *wordlist.List, scored []wordlist.Scored, opts BatchOptions) *Batch {
	if opts.Sorted {
		scored = append([]wordlist.Scored(nil), scored...)
		strength.SortByScore(scored, func(s wordlist.Scored) strength.Result { return s.Result })
	}

	entries := make([]Entry, 0, len(scored))
	for _, s := range scored {
		e := Entry{
			Line:   s.Line,
			Masked: redact.Mask(s.Password, opts.Reveal),
			Length: redact.Length(s.Password),
			Result: s.Result,
		}
		if opts.Fingerprinter != nil {
			e.Fingerprint = opts.Fingerprinter.Fingerprint(s.Password)
		}
		entries = append(entries, e)
	}

	return &Batch{
		Tool:     Tool,
		Version:  version,
		MaxScore: strength.MaxScore,
		Input: Input{
			File:    filepath.Base(l.FilePath),
			Hash:    l.Hash,
			Entries: len(l.Entries),
			Sorted:  opts.Sorted,
		},
		Summary: strength.Summarize(wordlist.Results(scored)),
		Entries: entries,
	}
}
