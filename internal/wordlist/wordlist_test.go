package wordlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/pwcheck/internal/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passwords.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempList(t, "hunter2\r\n\nXk9#mQ2$pL7@\n  spaced  \n")

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.FilePath)
	assert.True(t, strings.HasPrefix(l.Hash, "sha256:"))
	assert.Len(t, l.Hash, len("sha256:")+64)

	require.Len(t, l.Entries, 3)
	assert.Equal(t, Entry{Line: 1, Password: "hunter2"}, l.Entries[0])
	assert.Equal(t, Entry{Line: 3, Password: "Xk9#mQ2$pL7@"}, l.Entries[1])
	assert.Equal(t, Entry{Line: 4, Password: "  spaced  "}, l.Entries[2])
}

func TestLoadHashStable(t *testing.T) {
	a, err := Load(writeTempList(t, "abc\n"))
	require.NoError(t, err)
	b, err := Load(writeTempList(t, "abc\n"))
	require.NoError(t, err)
	c, err := Load(writeTempList(t, "abd\n"))
	require.NoError(t, err)
	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/passwords.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wordlist.Load")
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\r\n\n"))
}

func TestEvaluatePreservesOrder(t *testing.T) {
	var entries []Entry
	for i := 0; i < 200; i++ {
		entries = append(entries, Entry{Line: i + 1, Password: fmt.Sprintf("Pw%d!xyz", i)})
	}

	got, err := Evaluate(context.Background(), entries, 8)
	require.NoError(t, err)
	require.Len(t, got, len(entries))
	for i, s := range got {
		assert.Equal(t, entries[i], s.Entry)
		assert.Equal(t, strength.Evaluate(entries[i].Password), s.Result)
	}
}

func TestEvaluateDefaultWorkers(t *testing.T) {
	got, err := Evaluate(context.Background(), Parse("a\nb\n"), 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluate(ctx, Parse("a\nb\nc\n"), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResults(t *testing.T) {
	scored := []Scored{
		{Entry: Entry{Line: 1}, Result: strength.Result{Score: 2}},
		{Entry: Entry{Line: 2}, Result: strength.Result{Score: 5}},
	}
	rs := Results(scored)
	require.Len(t, rs, 2)
	assert.Equal(t, 2, rs[0].Score)
	assert.Equal(t, 5, rs[1].Score)
}
