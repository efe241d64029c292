package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vocabrecall/vocabrecall/internal/card"
	"github.com/vocabrecall/vocabrecall/internal/cli"
	"github.com/vocabrecall/vocabrecall/internal/config"
	"github.com/vocabrecall/vocabrecall/internal/extract"
	"github.com/vocabrecall/vocabrecall/internal/tagger"
)

func newImportCommand() *cobra.Command {
	var (
		folderID     int64
		deckName     string
		minFrequency int
	)

	importCommand := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a document's text into a new deck",
		Long: "Import reads already-extracted document text (a UTF-8 file, or stdin when " +
			"the argument is \"-\") and creates a deck. Structured front/back lists are " +
			"parsed directly; free prose goes through vocabulary classification.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			text, source, err := readInput(args[0])
			if err != nil {
				return err
			}
			if deckName == "" {
				deckName = source
			}
			if minFrequency == 0 {
				minFrequency = cfg.Extract.MinFrequency
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			importer := cli.NewImporter(
				newExtractor(cfg),
				card.NewDBDeckRepository(db),
				card.NewDBCardRepository(db),
			)
			result, err := importer.ImportText(cmd.Context(), text, cli.ImportOptions{
				FolderID:       folderID,
				DeckName:       deckName,
				SourceFilename: source,
				MinFrequency:   minFrequency,
			})
			if err != nil {
				return fmt.Errorf("importer.ImportText > %w", err)
			}

			mode := "free text"
			if result.Structured {
				mode = "structured list"
			}
			fmt.Printf("Created deck %d with %d cards (%s)\n", result.DeckID, result.CardCount, mode)
			return nil
		},
	}

	importCommand.Flags().Int64Var(&folderID, "folder", 1, "folder id for the new deck")
	importCommand.Flags().StringVar(&deckName, "name", "", "deck name (defaults to the file name)")
	importCommand.Flags().IntVar(&minFrequency, "min-frequency", 0, "minimum word frequency (defaults to the configured value)")
	return importCommand
}

// newExtractor wires the extraction pipeline. Without a configured
// tagger it runs heuristics only.
func newExtractor(cfg *config.Config) *extract.Extractor {
	if cfg.Tagger.BaseURL == "" {
		return extract.NewExtractor(nil)
	}
	client := tagger.NewClient(tagger.Config{
		BaseURL:      cfg.Tagger.BaseURL,
		APIKey:       cfg.Tagger.APIKey,
		ChunkSize:    cfg.Tagger.ChunkSize,
		ProbeTimeout: time.Duration(cfg.Tagger.ProbeTimeoutSeconds) * time.Second,
	})
	return extract.NewExtractor(extract.NewTaggerClassifier(client))
}

func readInput(arg string) (text string, source string, err error) {
	if arg == "-" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("io.ReadAll > %w", err)
		}
		return string(contents), "stdin", nil
	}

	contents, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("os.ReadFile > %w", err)
	}
	return string(contents), filepath.Base(arg), nil
}
