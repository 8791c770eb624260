package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/dragonfly/assets"
	"github.com/npillmayer/dragonfly/dom/style/cssom"
	"github.com/npillmayer/dragonfly/dom/style/cssom/douceuradapter"
	"github.com/spf13/cobra"
)

func newCSSCmd() *cobra.Command {
	var defaultCSS bool
	cmd := &cobra.Command{
		Use:   "css [file]",
		Short: "Parse a style sheet and print its rules",
		Long: "Parse a style sheet and print its rules. With --default, browser color " +
			"keywords are replaced; without a file, the built-in default style sheet is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := cssom.Normal
			if defaultCSS {
				mode = cssom.DefaultCSS
			}
			source := assets.DefaultCSS()
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				source = string(data)
			}
			sheet, err := douceuradapter.Parse(source, mode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d rules (%s)\n", sheet, len(sheet.Rules()), mode)
			return nil
		},
	}
	cmd.Flags().BoolVar(&defaultCSS, "default", false, "parse in default style sheet mode")
	return cmd
}
