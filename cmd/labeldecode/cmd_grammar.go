package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/dhamidi/labeldecode/label"
	"github.com/dhamidi/labeldecode/label/combinator"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "EBNF label grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarTryCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF label grammar",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				err = fmt.Errorf("open file: %w", err)
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			defer f.Close()

			grammar, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(grammar, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			// Verify accepts recursion; label grammars must not have it.
			if _, err := combinator.LoadEBNF(filename, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newGrammarTryCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "try <file> <line>...",
		Short: "Feed label lines to an EBNF grammar one at a time",
		Long: `Build a label grammar from an EBNF file and feed it the given lines as a
multi-line label would be read. Reports the first line after which the label
can no longer match, or the captured productions of a complete match.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := combinator.LoadEBNF(args[0], startProduction)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			g := combinator.New(root, func(c label.Captures) (label.Captures, error) {
				return c, nil
			}, combinator.WithName(startProduction))

			out := cmd.OutOrStdout()
			s := g.Stream()
			for i, line := range args[1:] {
				if err := s.Feed(line); err != nil {
					err = fmt.Errorf("line %d: %w", i+1, err)
					printErrors(cmd.ErrOrStderr(), err)
					return err
				}
				fmt.Fprintf(out, "line %d: viable, complete=%t\n", i+1, s.IsComplete())
			}

			caps, err := s.Finish()
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			for i, name := range caps.Names() {
				if name != "" && caps.Index(i) != "" {
					fmt.Fprintf(out, "%s\t%s\n", name, caps.Index(i))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "Label", "start production")

	return cmd
}

func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
