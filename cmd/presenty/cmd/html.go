// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     cmd
// Description: anchor, mailto and sign commands
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/presenty/pkg/presenty"
)

func newAnchorCmd(a *app) *cobra.Command {
	var (
		href  string
		attrs map[string]string
	)

	cmd := &cobra.Command{
		Use:     "anchor VALUE",
		Short:   "Wrap a value in an HTML link",
		Example: `  presenty anchor Docs --href https://go.dev --attr class=btn --attr target=_self`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.present(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, p.Anchor(href, presenty.Attributes(attrs)))
		},
	}

	cmd.Flags().StringVar(&href, "href", "", "link target")
	cmd.Flags().StringToStringVar(&attrs, "attr", nil, "extra attribute as key=value, repeatable")
	_ = cmd.MarkFlagRequired("href")

	return cmd
}

func newMailtoCmd(a *app) *cobra.Command {
	var (
		label string
		attrs map[string]string
	)

	cmd := &cobra.Command{
		Use:   "mailto ADDRESS",
		Short: "Turn an e-mail address into a mailto link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.present(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, p.Mailto(presenty.Attributes(attrs), label))
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "link text (default: the address)")
	cmd.Flags().StringToStringVar(&attrs, "attr", nil, "extra attribute as key=value, repeatable")

	return cmd
}

func newSignCmd(a *app) *cobra.Command {
	var positive, negative string

	cmd := &cobra.Command{
		Use:   "sign VALUE",
		Short: "Wrap a number in a span classed by its sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.defaults()
			if !cmd.Flags().Changed("positive") {
				positive = d.PositiveClass
			}
			if !cmd.Flags().Changed("negative") {
				negative = d.NegativeClass
			}

			p, err := a.present(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, p.BkgPositiveOrNegative(positive, negative))
		},
	}

	cmd.Flags().StringVar(&positive, "positive", "", "class for zero and positive numbers (default from config)")
	cmd.Flags().StringVar(&negative, "negative", "", "class for everything else (default from config)")

	return cmd
}
