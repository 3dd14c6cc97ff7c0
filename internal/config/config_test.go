package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/pwcheck/internal/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pwcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "default", c.Name)
	assert.Equal(t, FormatText, c.Format)
	assert.Empty(t, c.FailOn)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 1, c.Mask.Reveal)
	assert.NoError(t, c.Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, c)
}

func TestLoadOverlay(t *testing.T) {
	path := writeTempConfig(t, "format: json\nfail_on: medium\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, c.Format)
	assert.Equal(t, "medium", c.FailOn)
	// untouched keys keep their defaults
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 1, c.Mask.Reveal)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeTempConfig(t, "format: [json\n"))
	assert.Error(t, err)
}

func TestLoadDefersValidation(t *testing.T) {
	c, err := Load(writeTempConfig(t, "format: xml\n"))
	require.NoError(t, err)
	assert.Error(t, c.Validate())

	c.Format = FormatJSON
	assert.NoError(t, c.Validate())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown format", "format: xml\n"},
		{"unknown fail_on", "fail_on: terrible\n"},
		{"zero workers", "workers: 0\n"},
		{"negative reveal", "mask:\n  reveal: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(writeTempConfig(t, tt.content))
			require.NoError(t, err)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/pwcheck.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.Load")
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		failOn  string
		want    strength.Strength
		wantErr bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"weak", strength.Weak, false},
		{"Medium", strength.Medium, false},
		{"STRONG", strength.Strong, false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			c := &Config{FailOn: tt.failOn}
			got, err := c.Threshold()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
