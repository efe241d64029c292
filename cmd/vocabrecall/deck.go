package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vocabrecall/vocabrecall/internal/card"
	"github.com/vocabrecall/vocabrecall/internal/cli"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

func newDeckCommand() *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Manage decks",
	}
	deckCommand.AddCommand(
		newDeckRenameCommand(),
		newDeckMoveCommand(),
		newDeckDeleteCommand(),
		newDeckResetCommand(),
		newDeckStatsCommand(),
	)
	return deckCommand
}

func newDeckRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <deck-id> <new-name>",
		Short: "Rename a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withDeckRepository(func(repo card.DeckRepository) error {
				return repo.Rename(cmd.Context(), deckID, args[1])
			})
		},
	}
}

func newDeckMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <deck-id> <folder-id>",
		Short: "Move a deck to another folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}
			folderID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return withDeckRepository(func(repo card.DeckRepository) error {
				return repo.Move(cmd.Context(), deckID, folderID)
			})
		},
	}
}

func newDeckDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deck-id>",
		Short: "Delete a deck and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withDeckRepository(func(repo card.DeckRepository) error {
				return repo.Delete(cmd.Context(), deckID)
			})
		},
	}
}

func newDeckResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <deck-id>",
		Short: "Reset a deck's scheduling progress and delete its review logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withCardRepository(func(repo card.CardRepository) error {
				reset, err := repo.ResetProgress(cmd.Context(), deckID, time.Now())
				if err != nil {
					return err
				}
				fmt.Printf("Reset progress for %d cards\n", reset)
				return nil
			})
		},
	}
}

func newDeckStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <deck-id>",
		Short: "Show a deck's progress counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withCardRepository(func(repo card.CardRepository) error {
				stats, err := repo.Stats(cmd.Context(), deckID, time.Now())
				if err != nil {
					return err
				}
				cli.WriteDeckStats(os.Stdout, args[0], stats)
				return nil
			})
		},
	}
}

func newFolderCommand() *cobra.Command {
	folderCommand := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
	}
	folderCommand.AddCommand(
		newFolderCreateCommand(),
		newFolderRenameCommand(),
		newFolderDeleteCommand(),
		newFolderListCommand(),
	)
	return folderCommand
}

func newFolderCreateCommand() *cobra.Command {
	var parentID int64

	createCommand := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFolderRepository(func(repo card.FolderRepository) error {
				var parent *int64
				if parentID > 0 {
					parent = &parentID
				}
				id, err := repo.Create(cmd.Context(), args[0], parent)
				if err != nil {
					return err
				}
				fmt.Printf("Created folder %d\n", id)
				return nil
			})
		},
	}
	createCommand.Flags().Int64Var(&parentID, "parent", 0, "parent folder id (0 for a root folder)")
	return createCommand
}

func newFolderRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <folder-id> <new-name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withFolderRepository(func(repo card.FolderRepository) error {
				return repo.Rename(cmd.Context(), folderID, args[1])
			})
		},
	}
}

func newFolderDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <folder-id>",
		Short: "Delete a folder and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withFolderRepository(func(repo card.FolderRepository) error {
				return repo.Delete(cmd.Context(), folderID)
			})
		},
	}
}

func newFolderListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFolderRepository(func(repo card.FolderRepository) error {
				folders, err := repo.FindAll(cmd.Context())
				if err != nil {
					return err
				}
				for _, folder := range folders {
					fmt.Printf("%d\t%s\n", folder.ID, folder.Name)
				}
				return nil
			})
		},
	}
}

func withFolderRepository(fn func(repo card.FolderRepository) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return fn(card.NewDBFolderRepository(db))
}

func withDeckRepository(fn func(repo card.DeckRepository) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return fn(card.NewDBDeckRepository(db))
}

func withCardRepository(fn func(repo card.CardRepository) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return fn(card.NewDBCardRepository(db))
}
