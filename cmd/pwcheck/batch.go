package main

import (
	"context"
	"path/filepath"

	"github.com/dshills/pwcheck/internal/config"
	"github.com/dshills/pwcheck/internal/render"
	"github.com/dshills/pwcheck/internal/report"
	"github.com/dshills/pwcheck/internal/wordlist"
	"github.com/spf13/cobra"
)

type batchFlags struct {
	commonFlags
	sort bool
}

func newBatchCmd() *cobra.Command {
	f := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Evaluate every password in a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.recordChanged(cmd.Flags())
			f.stdout = cmd.OutOrStdout()
			f.stderr = cmd.ErrOrStderr()
			return runBatch(cmd.Context(), args[0], f)
		},
	}

	flags := cmd.Flags()
	addCommonFlags(flags, &f.commonFlags)
	flags.IntVar(&f.workers, "workers", wordlist.DefaultWorkers, "Concurrent evaluations")
	flags.BoolVar(&f.sort, "sort", false, "List weakest passwords first")

	return cmd
}

func runBatch(ctx context.Context, path string, f *batchFlags) error {
	log := f.logger()

	cfg, threshold, err := f.settings()
	if err != nil {
		return err
	}

	log.Debug().Str("path", path).Msg("loading password list")
	l, err := wordlist.Load(path)
	if err != nil {
		return exitError(exitInput, "failed to load password list: %v", err)
	}
	log.Debug().Int("entries", len(l.Entries)).Str("hash", l.Hash).Int("workers", cfg.Workers).Msg("evaluating")

	scored, err := wordlist.Evaluate(ctx, l.Entries, cfg.Workers)
	if err != nil {
		return err
	}

	fp, err := fingerprinter()
	if err != nil {
		return err
	}
	rep := report.NewBatch(version, l, scored, report.BatchOptions{
		Reveal:        cfg.Mask.Reveal,
		Sorted:        f.sort,
		Fingerprinter: fp,
	})
	log.Debug().
		Str("file", filepath.Base(path)).
		Int("strong", rep.Summary.StrongCount).
		Int("medium", rep.Summary.MediumCount).
		Int("weak", rep.Summary.WeakCount).
		Msg("batch complete")

	var output string
	switch cfg.Format {
	case config.FormatText:
		output = render.BatchText(rep)
	case config.FormatJSON:
		output, err = marshalJSON(rep)
		if err != nil {
			return err
		}
	case config.FormatMarkdown:
		output = render.BatchMarkdown(rep)
	default:
		return exitError(exitInput, "unknown format: %s", cfg.Format)
	}

	if err := f.write(log, output); err != nil {
		return err
	}

	if rep.Summary.Total == 0 {
		log.Warn().Str("path", path).Msg("password list is empty")
		return nil
	}
	return checkThreshold(rep.Summary.Weakest, threshold)
}
