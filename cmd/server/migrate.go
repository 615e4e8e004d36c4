package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youruser/opdeck/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)
		db, err := store.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := store.CreateSchema(ctx, db); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", cfg.DatabaseType)
		return nil
	},
}
