package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/labeldecode/batch"
	"github.com/dhamidi/labeldecode/format"
	"github.com/dhamidi/labeldecode/label"

	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		outputFormat string
		hintYear     uint16
	)

	cmd := &cobra.Command{
		Use:   "decode <family> [line...]",
		Short: "Decode one label",
		Long: `Decode one label of the given family. The label's lines are taken from
the arguments, or from standard input when there are none, and joined with
single spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFamily(a.registry, args[0])
			if err != nil {
				return err
			}

			lines := args[1:]
			if len(lines) == 0 {
				lines, err = readLines(f.Viable)
				if err != nil {
					return err
				}
			}
			text := strings.Join(lines, " ")

			m, err := f.Match(text)
			if err != nil {
				return err
			}

			var hint label.Year
			if hintYear != 0 {
				hint = label.FullYear(hintYear)
			}
			res := batch.Result{
				ID:   "-",
				Hint: hint,
				Components: []batch.Decoded{{
					Component: batch.Component{Slot: f.Name(), Family: f.Name(), Label: text},
					Record:    m.Record,
					Grammar:   m.Grammar,
					Ambiguous: m.Ambiguous,
					Date:      label.ReconcileDate(m.Record.Date, hint),
				}},
			}

			if outputFormat == "" {
				outputFormat = a.cfg.Batch.Format
			}
			enc, err := format.New(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			return enc.Encode([]batch.Result{res})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: "+strings.Join(format.Names, ", "))
	cmd.Flags().Uint16Var(&hintYear, "hint", 0, "full year used to resolve single-digit years")

	return cmd
}

// readLines reads label lines from standard input. On a terminal, reading
// stops at the first line after which the label can no longer grow.
func readLines(viable func(string) bool) ([]string, error) {
	var lines []string
	interactive := isTerminal(os.Stdin)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if interactive && !viable(strings.Join(lines, " ")) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read label: %w", err)
	}
	return lines, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
