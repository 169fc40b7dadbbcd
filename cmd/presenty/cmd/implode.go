// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     cmd
// Description: implode command
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/presenty/foundation/utils/slicex"
)

func newImplodeCmd(a *app) *cobra.Command {
	var (
		separator string
		keepZero  bool
	)

	cmd := &cobra.Command{
		Use:     "implode [ITEM...]",
		Short:   "Join items, skipping empty ones",
		Example: `  presenty implode Roma "" 0 Milano --sep ", "`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sep") {
				separator = a.defaults().ImplodeSeparator
			}

			p, err := a.present("")
			if err != nil {
				return err
			}
			items := slicex.Map(args, func(s string) any { return s })
			return printValue(cmd, p.Implode(items, separator, !keepZero))
		},
	}

	cmd.Flags().StringVarP(&separator, "sep", "s", "", "separator (default from config)")
	cmd.Flags().BoolVar(&keepZero, "keep-zero", false, `keep "0" items`)

	return cmd
}
