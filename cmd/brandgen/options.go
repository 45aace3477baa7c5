package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newOptionsCmd(global *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the accepted industries, styles and color schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd, global)
			if err != nil {
				return err
			}

			opts := newOptionsView(svc.Options(cmd.Context()))
			w := cmd.OutOrStdout()

			if asJSON {
				return writeJSON(w, opts)
			}

			fmt.Fprintf(w, "industries:    %s\n", strings.Join(opts.Industries, ", "))
			fmt.Fprintf(w, "naming styles: %s\n", strings.Join(opts.NamingStyles, ", "))
			fmt.Fprintf(w, "logo styles:   %s\n", strings.Join(opts.LogoStyles, ", "))
			fmt.Fprintf(w, "color schemes: %s\n", strings.Join(opts.ColorSchemes, ", "))

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print options as JSON, palettes included")

	return cmd
}
