package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/folio-blog/folio/content"
)

func newIndexCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the SQLite post index from the content directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.config.DatabasePath == "" {
				return errors.New("index: databasePath is not configured")
			}
			posts, err := content.NewDir(c.config.ContentDir).Posts(cmd.Context())
			if err != nil {
				return err
			}
			store, err := content.NewStore(c.config.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.ReplaceAll(cmd.Context(), posts); err != nil {
				return err
			}
			slog.Info("indexed posts", "count", len(posts), "from", c.config.ContentDir, "db", c.config.DatabasePath)
			return nil
		},
	}
}
