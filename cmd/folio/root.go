package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/folio-blog/folio"
)

// cli carries the state shared by every subcommand.
type cli struct {
	cfgFile string
	config  folio.SiteConfig
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "folio",
		Short: "folio - the About page of a Markdown blog, served or exported",
		Long: `folio renders a blog's About page, RSS feed and sitemap from a directory
of Markdown posts or a SQLite post index. It can serve them over HTTP or
export them as static files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is ./folio.yaml)")

	root.AddCommand(
		newBuildCmd(c),
		newServeCmd(c),
		newIndexCmd(c),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads folio.yaml and FOLIO_* environment variables into
// c.config. A missing default config file is not an error.
func (c *cli) loadConfig() error {
	v := viper.New()

	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("contentDir", "content/blog")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("addr", ":3000")
	v.SetDefault("cacheTTL", "5m")

	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"title", "description", "author", "authorSummary", "twitter", "postsURL", "databasePath", "avatarPath"} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || c.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
		slog.Debug("no config file found, using defaults and environment")
	} else {
		slog.Info("using config file", "path", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&c.config); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}
