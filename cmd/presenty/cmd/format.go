// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     cmd
// Description: number, money, boolean, url and description commands
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

func newNumberCmd(a *app) *cobra.Command {
	var (
		decimals     int
		decPoint     string
		thousandsSep string
	)

	cmd := &cobra.Command{
		Use:   "number VALUE",
		Short: "Format a number with grouped thousands",
		Example: `  presenty number 1234.5 --decimals 2
  presenty number 1234.5 --decimals 2 --dec-point . --thousands-sep ,`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.defaults()
			if !cmd.Flags().Changed("decimals") {
				decimals = d.NumberDecimals
			}
			if !cmd.Flags().Changed("dec-point") {
				decPoint = d.DecimalSeparator
			}
			if !cmd.Flags().Changed("thousands-sep") {
				thousandsSep = d.GroupSeparator
			}

			p, err := a.present(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, p.Number(decimals, decPoint, thousandsSep))
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "decimal places (default from config)")
	cmd.Flags().StringVar(&decPoint, "dec-point", "", "decimal separator (default from config)")
	cmd.Flags().StringVar(&thousandsSep, "thousands-sep", "", "thousands separator (default from config)")

	return cmd
}

func newMoneyCmd(a *app) *cobra.Command {
	var (
		decimals int
		symbol   string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "money VALUE",
		Short: "Format an amount with a currency symbol",
		Example: `  presenty money 1234.5
  presenty money 10 --symbol $ --decimals 0
  presenty money 1234.5 --currency JPY`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.present(args[0])
			if err != nil {
				return err
			}
			if currency != "" {
				return printValue(cmd, p.MoneyIn(currency))
			}

			d := a.defaults()
			if !cmd.Flags().Changed("decimals") {
				decimals = d.MoneyDecimals
			}
			if !cmd.Flags().Changed("symbol") {
				symbol = d.CurrencySymbol
			}
			return printValue(cmd, p.Money(decimals, symbol))
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "decimal places (default from config)")
	cmd.Flags().StringVar(&symbol, "symbol", "", "currency symbol (default from config)")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 code, sets symbol and decimals")
	cmd.MarkFlagsMutuallyExclusive("currency", "symbol")
	cmd.MarkFlagsMutuallyExclusive("currency", "decimals")

	return cmd
}

func newBooleanCmd(a *app) *cobra.Command {
	var yes, no string

	cmd := &cobra.Command{
		Use:   "boolean VALUE",
		Short: "Print the yes or no label for a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.defaults()
			if !cmd.Flags().Changed("yes") {
				yes = d.YesLabel
			}
			if !cmd.Flags().Changed("no") {
				no = d.NoLabel
			}

			p, err := a.present(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, p.Boolean(yes, no))
		},
	}

	cmd.Flags().StringVar(&yes, "yes", "", "label for affirmative values (default from config)")
	cmd.Flags().StringVar(&no, "no", "", "label for other values (default from config)")

	return cmd
}

// newTruncateCmd builds url and description, which only differ in name
func newTruncateCmd(a *app, name, short string) *cobra.Command {
	var maxLength int

	cmd := &cobra.Command{
		Use:   name + " VALUE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max") {
				maxLength = a.defaults().TruncateLength
			}

			p, err := a.present(args[0])
			if err != nil {
				return err
			}
			if name == "url" {
				return printValue(cmd, p.URL(maxLength))
			}
			return printValue(cmd, p.Description(maxLength))
		},
	}

	cmd.Flags().IntVarP(&maxLength, "max", "m", 0, "maximum length including the ellipsis (default from config)")

	return cmd
}
