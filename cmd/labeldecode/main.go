package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/labeldecode/chip"
	"github.com/dhamidi/labeldecode/config"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	verbose    int
	cfg        *config.Config
	registry   *chip.Registry
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "labeldecode",
		Short:        "Decode the text printed on electronic components",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default $LABELDECODE_CONFIG or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newDecodeCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newFamiliesCmd(a))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(a))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity := cfg.Log.Verbosity
	if cmd.Flags().Changed("verbose") {
		verbosity = a.verbose
	}
	commonlog.Configure(verbosity, cfg.Log.LogPath())

	// Compile every grammar now so a broken pattern fails at startup.
	a.registry = chip.Default()
	return nil
}

func lookupFamily(reg *chip.Registry, name string) (chip.Family, error) {
	f, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown family %q (known: %v)", name, reg.Names())
	}
	return f, nil
}
