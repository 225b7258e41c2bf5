package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/academics-backend/internal/app"
	"github.com/yungbote/academics-backend/internal/config"
	"github.com/yungbote/academics-backend/internal/data/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "academics",
		Short:         "Academic records API",
		Long:          `Serves students, courses, teachers and departments as nested JSON views over a relational store.`,
		RunE:          serve,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (or set "+config.PathEnv+")")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  serve,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE:  migrate,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("academics %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, version)
	if err != nil {
		log.Error("App init failed", "error", err)
		log.Sync()
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close:", err)
		}
	}()

	if err := a.Run(ctx); err != nil {
		log.Error("Server stopped", "error", err)
		return err
	}
	log.Info("Server stopped")
	return nil
}

func migrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	gdb, err := db.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close(gdb)

	if err := db.AutoMigrateAll(gdb); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	log.Info("Schema migrated", "driver", cfg.Database.Driver)
	return nil
}
