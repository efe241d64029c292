package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vocabrecall/vocabrecall/internal/bootstrap"
	"github.com/vocabrecall/vocabrecall/internal/card"
	"github.com/vocabrecall/vocabrecall/internal/cli"
)

func newReviewCommand() *cobra.Command {
	var limit int

	reviewCommand := &cobra.Command{
		Use:   "review <deck-id>",
		Short: "Study the due cards of a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			app := bootstrap.New()
			app.AddShutdownHook(func(ctx context.Context) error {
				return db.Close()
			})
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				session := cli.NewReviewSession(card.NewDBCardRepository(db), os.Stdin, os.Stdout)
				return session.Run(ctx, deckID, limit)
			})
		},
	}

	reviewCommand.Flags().IntVar(&limit, "limit", 50, "maximum number of cards per session")
	return reviewCommand
}
