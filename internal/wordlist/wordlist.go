// Package wordlist reads password lists and scores their entries concurrently.
package wordlist

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/pwcheck/internal/strength"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrent evaluations when no limit is given.
const DefaultWorkers = 4

// List holds a loaded password file with its entries and metadata.
type List struct {
	FilePath string
	Entries  []Entry
	Hash     string
}

// Entry is one non-empty line of a password file.
type Entry struct {
	Line     int
	Password string
}

// Scored pairs an entry with its evaluation.
type Scored struct {
	Entry
	Result strength.Result
}

// Load reads a password file, one candidate per line, and computes its SHA-256 hash.
// Empty lines are skipped; line numbers refer to the original file.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist.Load: %w", err)
	}
	h := sha256.Sum256(data)
	return &List{
		FilePath: path,
		Entries:  Parse(string(data)),
		Hash:     fmt.Sprintf("sha256:%x", h),
	}, nil
}

// Parse splits raw text into entries, dropping empty lines and CR line endings.
func Parse(raw string) []Entry {
	var entries []Entry
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		entries = append(entries, Entry{Line: i + 1, Password: line})
	}
	return entries
}

// Evaluate scores entries using at most workers goroutines.
// Results are returned in input order.
func Evaluate(ctx context.Context, entries []Entry, workers int) ([]Scored, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	out := make([]Scored, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Scored{Entry: e, Result: strength.Evaluate(e.Password)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("wordlist.Evaluate: %w", err)
	}
	return out, nil
}

// Results extracts the evaluations from scored entries.
func Results(scored []Scored) []strength.Result {
	rs := make([]strength.Result, len(scored))
	for i, s := range scored {
		rs[i] = s.Result
	}
	return rs
}
