// Package cli wires the evaluation surface into a cobra command tree:
// one subcommand per integral, plus persistent configuration flags
// and an optional YAML configuration file.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/oneloop"
	"github.com/katalvlaran/oneloop/engine"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Scale      float64
	Threshold  float64
	Feynman    bool
	ConfigPath string
}

// NewRootCommand creates the oneloop CLI root.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "oneloop",
		Short: "Evaluate scalar one-loop integrals",
		Long: `Evaluate the scalar one-loop integrals A0, B0, C0 and D0 and print
their Laurent expansion in the dimensional-regularization parameter ε.

Squared masses accept complex literals ("0.25", "(0.5-0.05i)");
momentum invariants are real. Configuration comes from flags or from
a YAML file given with --config; explicitly set flags win.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigPath != "" {
				cfg, err := LoadConfig(opts.ConfigPath)
				if err != nil {
					return err
				}
				if err := cfg.Apply(); err != nil {
					return err
				}
			}
			pf := cmd.Root().PersistentFlags()
			if pf.Changed("mu") {
				if err := oneloop.SetRenormalizationScale(opts.Scale); err != nil {
					return err
				}
			}
			if pf.Changed("threshold") {
				if err := oneloop.SetOnshellThreshold(opts.Threshold); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().Float64Var(&opts.Scale, "mu", engine.DefaultScale,
		"renormalization scale μ")
	cmd.PersistentFlags().Float64Var(&opts.Threshold, "threshold", engine.DefaultOnshellThreshold,
		"on-shell snap threshold")
	cmd.PersistentFlags().BoolVar(&opts.Feynman, "feynman", false,
		"rescale results by -1/(16π²)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"path to a YAML configuration file")

	cmd.AddCommand(NewA0Command(opts))
	cmd.AddCommand(NewB0Command(opts))
	cmd.AddCommand(NewC0Command(opts))
	cmd.AddCommand(NewD0Command(opts))

	return cmd
}
