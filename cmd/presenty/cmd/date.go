// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     cmd
// Description: date command
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/presenty/pkg/presenty"
)

func newDateCmd(a *app) *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "date VALUE",
		Short: "Reformat a date (default dd/mm/yyyy)",
		Long: `Reformat a date. Without --layout the date is printed as dd/mm/yyyy.
--layout takes a Go reference layout such as 2006-01-02 or one of the
names iso8601, iso8601-date, business, business-date, display,
display-date, italian, italian-datetime, compact, compact-date, log.`,
		Example: `  presenty date 2023-01-15
  presenty date 15/01/2023 --layout 2006-01-02
  presenty date today`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.present(args[0])
			if err != nil {
				return err
			}

			var out *presenty.Presenter
			if layout == "" {
				out, err = p.DateIta()
			} else {
				out, err = p.Date(layout)
			}
			if err != nil {
				return err
			}
			return printValue(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&layout, "layout", "l", "", "output layout or format name")

	return cmd
}
