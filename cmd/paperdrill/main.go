package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"paperdrill/internal/bootstrap"
	"paperdrill/internal/platform/config"
	"paperdrill/internal/platform/logging"
	"paperdrill/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "paperdrill",
		Short:         "Sentence drills built from research-paper abstracts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./paperdrill.yaml)")

	root.AddCommand(newServeCmd(&cfgFile))
	root.AddCommand(newPlayCmd(&cfgFile))
	root.AddCommand(newArticlesCmd(&cfgFile))
	root.AddCommand(newStatsCmd(&cfgFile))
	root.AddCommand(newSeedCmd(&cfgFile))
	return root
}

func loadConfig(cfgFile string) (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}
	return config.Load(cfgFile)
}

// loadApp wires the application. A nil logger means the caller owns the
// terminal and nothing may be written to it.
func loadApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*bootstrap.App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return bootstrap.New(ctx, cfg, logger)
}

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API behind the password gate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.RequireAuth(); err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := loadApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			logger.Info("store opened", zap.String("backend", cfg.Store.Backend))
			return server.Run(ctx, app.Server(), cfg.ListenAddr, logger)
		},
	}
}

func newPlayCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run the drill in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newArticlesCmd(cfgFile *string) *cobra.Command {
	articles := &cobra.Command{Use: "articles", Short: "Article catalog commands"}

	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List playable articles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			c, err := app.CatalogCLI.Load(cmd.Context())
			if err != nil {
				return err
			}
			shown := c.Playable()
			if all {
				shown = c.Articles
			}
			if len(shown) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no articles")
				return nil
			}
			rows := make([][]string, 0, len(shown))
			for _, a := range shown {
				rows = append(rows, []string{a.ID, string(a.Status), strconv.Itoa(len(a.GameData)), a.Title, strings.Join(a.Tags, ",")})
			}
			return renderTable(cmd.OutOrStdout(), []string{"ID", "STATUS", "SENTENCES", "TITLE", "TAGS"}, rows)
		},
	}
	list.Flags().BoolVar(&all, "all", false, "include finished and unplayable articles")
	articles.AddCommand(list)
	return articles
}

func newStatsCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today's totals and the tag summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			today, err := app.Ledger.Today(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "date: %s\npapers: %d\nsentences: %d\nwords: %d\n",
				today.Date, today.Papers, today.Sentences, today.Words)

			tags, err := app.CatalogCLI.Tags(cmd.Context())
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(tags))
			for _, t := range tags {
				rows = append(rows, []string{t.Tag, strconv.Itoa(t.Count)})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return renderTable(cmd.OutOrStdout(), []string{"TAG", "ARTICLES"}, rows)
		},
	}
}

func newSeedCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Import articles from a YAML fixture (upsert by id)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			articles, err := parseSeed(raw)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			out, err := app.CatalogCLI.Import(cmd.Context(), articles)
			if err != nil {
				return err
			}
			_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ imported %d articles\n", out.Imported)
			return nil
		},
	}
}
