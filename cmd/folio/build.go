package main

import (
	"github.com/spf13/cobra"

	"github.com/folio-blog/folio"
)

func newBuildCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				c.config.OutputDir = out
			}
			app, err := folio.New(c.config)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Export(cmd.Context(), app.Config.OutputDir)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides outputDir)")
	return cmd
}
