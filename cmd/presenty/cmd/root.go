// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and presenter setup
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/presenty/foundation/core/log"
	appconfig "github.com/msto63/presenty/pkg/core/config"
	"github.com/msto63/presenty/pkg/core/logging"
	"github.com/msto63/presenty/pkg/presenty"
)

// app carries the global flags and what PersistentPreRunE builds from them
type app struct {
	cfgFile  string
	envFile  string
	verbose  bool
	encoding string

	logger  *mdwlog.Logger
	factory *presenty.Factory
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "presenty",
		Short: "Format values for display",
		Long: `presenty formats a single value for display and prints the result.

Commands:
  number       - grouped number with fixed decimals
  money        - number with currency symbol
  boolean      - yes/no label
  url          - shortened URL
  description  - shortened text
  anchor       - HTML link
  mailto       - HTML mailto link
  sign         - span with positive/negative CSS class
  date         - reformatted date
  implode      - joined list

Defaults come from a TOML or YAML file and PRESENTY_* environment
variables, e.g. PRESENTY_MONEY_SYMBOL=$. The file is --config, else
$PRESENTY_CONFIG, else the first of ./presenty.toml, ./presenty.yaml,
./presenty.yml, ./configs/presenty.toml and the user config directory
(presenty/config.toml or presenty/config.yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML, default: searched)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "read PRESENTY_* overrides from a .env file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&a.encoding, "encoding", "", "encoding recorded on the value (default from config)")

	root.AddCommand(
		newNumberCmd(a),
		newMoneyCmd(a),
		newBooleanCmd(a),
		newTruncateCmd(a, "url", "Shorten a URL"),
		newTruncateCmd(a, "description", "Shorten a text"),
		newAnchorCmd(a),
		newMailtoCmd(a),
		newSignCmd(a),
		newDateCmd(a),
		newImplodeCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI and reports errors on stderr
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := appconfig.Load(a.cfgFile, a.envFile)
	if err != nil {
		return err
	}

	lc := logging.FromConfig(cfg, "presenty")
	lc.Output = stderr
	if a.verbose {
		lc.Level = "debug"
	}
	a.logger = logging.NewLogger(lc)

	a.factory, err = presenty.NewFactoryFromConfig(cfg, a.logger)
	if err != nil {
		return err
	}

	a.logger.Debug("presenter ready", mdwlog.Fields{"config": cfg.FilePath(), "encoding": a.encoding})
	return nil
}

// present wraps input using the configured defaults and --encoding
func (a *app) present(input any) (*presenty.Presenter, error) {
	var opts []presenty.Option
	if a.encoding != "" {
		opts = append(opts, presenty.WithEncoding(a.encoding))
	}
	return a.factory.Create(input, opts...)
}

func (a *app) defaults() presenty.Defaults {
	return a.factory.Defaults()
}

func printValue(cmd *cobra.Command, p *presenty.Presenter) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), p.String())
	return err
}
