package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/dhamidi/labeldecode/batch"
	"github.com/dhamidi/labeldecode/format"

	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		outputFormat string
		workers      int
		hintSlot     string
		watch        bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>... | batch --watch <dir>",
		Short: "Decode submission files",
		Long: `Decode every submission in the given YAML or JSON files. A submission lists
the labels of one assembly; single-digit years are resolved against the year
of the hint slot's component. With --watch the directory is polled and files
are decoded again whenever they change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "" {
				outputFormat = a.cfg.Batch.Format
			}
			enc, err := format.New(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = a.cfg.Batch.Workers
			}
			if hintSlot == "" {
				hintSlot = a.cfg.Batch.HintSlot
			}
			decoder := batch.NewDecoder(a.registry, batch.WithWorkers(workers), batch.WithHintSlot(hintSlot))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if watch {
				if len(args) != 1 {
					return errors.New("--watch takes exactly one directory")
				}
				w := batch.NewWatcher(args[0], decoder, func(path string, results []batch.Result) {
					if err := enc.Encode(results); err != nil {
						log.Errorf("encode %s: %v", path, err)
					}
				})
				w.SetPollInterval(a.cfg.Batch.PollInterval)
				return w.Run(ctx)
			}

			return runBatch(ctx, decoder, enc, args)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: "+strings.Join(format.Names, ", "))
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "submissions decoded in parallel")
	cmd.Flags().StringVar(&hintSlot, "hint-slot", "", "slot whose year resolves the others")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "poll a directory and decode changed files")

	return cmd
}

func runBatch(ctx context.Context, decoder *batch.Decoder, enc format.Encoder, files []string) error {
	var subs []batch.Submission
	var sources []string
	for _, file := range files {
		s, err := batch.ReadFile(file)
		if err != nil {
			return err
		}
		subs = append(subs, s...)
		for range s {
			sources = append(sources, file)
		}
	}

	results, err := decoder.Run(ctx, subs)
	if err != nil {
		return err
	}
	failed := 0
	for i := range results {
		results[i].Source = sources[i]
		if results[i].Err != nil {
			failed++
		}
	}

	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d submissions failed", failed, len(results))
	}
	return nil
}
