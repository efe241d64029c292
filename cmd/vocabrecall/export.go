package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vocabrecall/vocabrecall/internal/card"
	"github.com/vocabrecall/vocabrecall/internal/datasync"
)

func newExportCommand() *cobra.Command {
	exportCommand := &cobra.Command{
		Use:   "export",
		Short: "Export deck contents to files",
	}
	exportCommand.AddCommand(
		newExportCSVCommand(),
		newExportYAMLCommand(),
	)
	return exportCommand
}

func newExportCSVCommand() *cobra.Command {
	var output string

	csvCommand := &cobra.Command{
		Use:   "csv <deck-id>",
		Short: "Export a deck's cards to a CSV file",
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

			repo := card.NewDBCardRepository(db)
			cards, err := repo.AllCards(cmd.Context(), deckID)
			if err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(cfg.Exports.Directory, fmt.Sprintf("deck_%d.csv", deckID))
			}
			exported, err := datasync.NewCSVDeckSink(output).WriteCards(cards)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d cards to %s\n", exported, output)
			return nil
		},
	}

	csvCommand.Flags().StringVar(&output, "output", "", "output file path")
	return csvCommand
}

func newExportYAMLCommand() *cobra.Command {
	var outputDir string

	yamlCommand := &cobra.Command{
		Use:   "yaml <deck-id>",
		Short: "Export a deck's cards and review history to YAML files",
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

			repo := card.NewDBCardRepository(db)
			cards, err := repo.AllCards(cmd.Context(), deckID)
			if err != nil {
				return err
			}
			logs, err := repo.FindReviewLogs(cmd.Context(), deckID)
			if err != nil {
				return err
			}

			if outputDir == "" {
				outputDir = filepath.Join(cfg.Exports.Directory, fmt.Sprintf("deck_%d", deckID))
			}
			sink := datasync.NewYAMLDeckSink(outputDir)
			if err := sink.WriteCards(cards); err != nil {
				return err
			}
			if err := sink.WriteReviewLogs(logs); err != nil {
				return err
			}
			fmt.Printf("Exported %d cards and %d review logs to %s\n", len(cards), len(logs), outputDir)
			return nil
		},
	}

	yamlCommand.Flags().StringVar(&outputDir, "output-dir", "", "output directory")
	return yamlCommand
}
