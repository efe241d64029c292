package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocabrecall/vocabrecall/schemas"
)

func newDBCommand() *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Manage the database",
	}
	dbCommand.AddCommand(newDBInitCommand())
	return dbCommand
}

func newDBInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if _, err := db.ExecContext(cmd.Context(), schemas.Schema); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
			cmd.Println("Database initialized.")
			return nil
		},
	}
}
