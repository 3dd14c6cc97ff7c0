package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/pwcheck/internal/config"
	"github.com/dshills/pwcheck/internal/redact"
	"github.com/dshills/pwcheck/internal/render"
	"github.com/dshills/pwcheck/internal/report"
	"github.com/dshills/pwcheck/internal/strength"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const promptText = "Enter a password to evaluate: "

// passwordReader supplies a password when none is given as an argument.
type passwordReader func() (string, error)

type checkFlags struct {
	commonFlags
	read passwordReader
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Evaluate a single password",
		Long: "Evaluate a single password. Without an argument the password is read " +
			"from stdin, or prompted for without echo when stdin is a terminal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.recordChanged(cmd.Flags())
			f.stdout = cmd.OutOrStdout()
			f.stderr = cmd.ErrOrStderr()
			f.read = stdinReader(os.Stdin, f.stderr)
			return runCheck(args, f)
		},
	}

	addCommonFlags(cmd.Flags(), &f.commonFlags)
	return cmd
}

func runCheck(args []string, f *checkFlags) error {
	log := f.logger()

	cfg, threshold, err := f.settings()
	if err != nil {
		return err
	}

	password, source, err := f.password(args)
	if err != nil {
		return err
	}
	fp, err := fingerprinter()
	if err != nil {
		return err
	}
	log.Debug().
		Str("source", source).
		Int("length", redact.Length(password)).
		Str("fingerprint", fp.Fingerprint(password)).
		Msg("evaluating password")

	result := strength.Evaluate(password)
	log.Debug().Int("score", result.Score).Str("strength", string(result.Strength)).Msg("evaluated")

	rep := report.NewCheck(version, result)

	var output string
	switch cfg.Format {
	case config.FormatText:
		output = render.Text(rep)
	case config.FormatJSON:
		output, err = marshalJSON(rep)
		if err != nil {
			return err
		}
	case config.FormatMarkdown:
		output = render.Markdown(rep)
	default:
		return exitError(exitInput, "unknown format: %s", cfg.Format)
	}

	if err := f.write(log, output); err != nil {
		return err
	}

	return checkThreshold(result.Strength, threshold)
}

func (f *checkFlags) password(args []string) (string, string, error) {
	if len(args) > 0 {
		return args[0], "argument", nil
	}
	if f.read == nil {
		return "", "", exitError(exitInput, "no password supplied")
	}
	pw, err := f.read()
	if err != nil {
		return "", "", exitError(exitInput, "failed to read password: %v", err)
	}
	return pw, "input", nil
}

// stdinReader prompts without echo when in is a terminal and otherwise reads
// the first line of in.
func stdinReader(in *os.File, prompt io.Writer) passwordReader {
	return func() (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return readLine(in)
		}
		fmt.Fprint(prompt, promptText)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// readLine returns the first line of r without its line ending. An empty line
// is a valid (empty) password; end of input with no data is an error.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", errors.New("no password on input")
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
