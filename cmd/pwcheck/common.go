package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/pwcheck/internal/config"
	"github.com/dshills/pwcheck/internal/redact"
	"github.com/dshills/pwcheck/internal/strength"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// fingerprintKeyEnv names the HMAC key for fingerprints. Unset, each run uses
// a random key and fingerprints only correlate within that run.
const fingerprintKeyEnv = "PWCHECK_FINGERPRINT_KEY"

// Exit codes.
const (
	exitThreshold = 2
	exitInput     = 3
)

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// commonFlags are shared by every subcommand. Values only override the
// config file when the flag was set explicitly (recorded in set).
type commonFlags struct {
	configPath string
	format     string
	out        string
	failOn     string
	reveal     int
	workers    int
	verbose    bool

	set    map[string]bool
	stdout io.Writer
	stderr io.Writer
}

func addCommonFlags(flags *pflag.FlagSet, f *commonFlags) {
	flags.StringVar(&f.configPath, "config", "", "YAML settings file (default: built-in)")
	flags.StringVar(&f.format, "format", config.FormatText, "Output format: text, json, or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit 2 if strength is at or below: weak, medium, or strong")
	flags.IntVar(&f.reveal, "reveal", 1, "Characters kept at each end of masked passwords")
	flags.BoolVar(&f.verbose, "verbose", false, "Log processing steps to stderr")
}

// recordChanged notes which flags the user set on the command line.
func (f *commonFlags) recordChanged(flags *pflag.FlagSet) {
	f.set = make(map[string]bool)
	flags.Visit(func(fl *pflag.Flag) {
		f.set[fl.Name] = true
	})
}

func (f *commonFlags) logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if f.verbose {
		level = zerolog.DebugLevel
	}
	w := f.stderr
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// settings loads the config file and applies explicit flag overrides.
func (f *commonFlags) settings() (*config.Config, strength.Strength, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, "", exitError(exitInput, "failed to load config: %v", err)
	}
	if f.set["format"] {
		cfg.Format = f.format
	}
	if f.set["fail-on"] {
		cfg.FailOn = f.failOn
	}
	if f.set["reveal"] {
		cfg.Mask.Reveal = f.reveal
	}
	if f.set["workers"] {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", exitError(exitInput, "invalid settings: %v", err)
	}
	threshold, err := cfg.Threshold()
	if err != nil {
		return nil, "", exitError(exitInput, "invalid settings: %v", err)
	}
	return cfg, threshold, nil
}

func fingerprinter() (*redact.Fingerprinter, error) {
	fp, err := redact.NewFingerprinter([]byte(os.Getenv(fingerprintKeyEnv)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialise fingerprints: %w", err)
	}
	return fp, nil
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal output: %w", err)
	}
	return string(data) + "\n", nil
}

func (f *commonFlags) write(log zerolog.Logger, output string) error {
	if f.out != "" {
		log.Debug().Str("path", f.out).Msg("writing output")
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	w := f.stdout
	if w == nil {
		w = os.Stdout
	}
	_, err := io.WriteString(w, output)
	return err
}

// checkThreshold returns an exit error when s is at or below threshold.
// An empty threshold disables the check.
func checkThreshold(s, threshold strength.Strength) error {
	if threshold == "" {
		return nil
	}
	if strength.AtOrBelow(s, threshold) {
		return exitError(exitThreshold, "strength %s meets fail threshold %s", s, threshold)
	}
	return nil
}
