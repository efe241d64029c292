package card

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// FolderRepository defines operations for managing folders.
type FolderRepository interface {
	Create(ctx context.Context, name string, parentID *int64) (int64, error)
	Rename(ctx context.Context, folderID int64, name string) error
	Delete(ctx context.Context, folderID int64) error
	FindAll(ctx context.Context) ([]Folder, error)
}

// DeckRepository defines operations for managing decks.
type DeckRepository interface {
	Create(ctx context.Context, name string, folderID int64, sourceFilename string) (int64, error)
	Rename(ctx context.Context, deckID int64, name string) error
	Move(ctx context.Context, deckID int64, folderID int64) error
	Delete(ctx context.Context, deckID int64) error
	FindByFolder(ctx context.Context, folderID int64) ([]Deck, error)
}

// DBFolderRepository implements FolderRepository using MySQL.
type DBFolderRepository struct {
	db *sqlx.DB
}

// NewDBFolderRepository creates a new DBFolderRepository.
func NewDBFolderRepository(db *sqlx.DB) *DBFolderRepository {
	return &DBFolderRepository{db: db}
}

// Create inserts a folder and returns its id.
func (r *DBFolderRepository) Create(ctx context.Context, name string, parentID *int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO folders (name, parent_id) VALUES (?, ?)", name, parentID)
	if err != nil {
		return 0, fmt.Errorf("insert folder: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("folder last insert id: %w", err)
	}
	return id, nil
}

// Rename updates a folder's name. Returns ErrNotFound for an unknown id.
func (r *DBFolderRepository) Rename(ctx context.Context, folderID int64, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE folders SET name = ? WHERE id = ?", name, folderID)
	if err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}
	return requireRowsAffected(result, "folder")
}

// Delete removes a folder. Child folders, decks and cards cascade.
func (r *DBFolderRepository) Delete(ctx context.Context, folderID int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", folderID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return requireRowsAffected(result, "folder")
}

// FindAll returns every folder ordered by name.
func (r *DBFolderRepository) FindAll(ctx context.Context) ([]Folder, error) {
	var folders []Folder
	if err := r.db.SelectContext(ctx, &folders, "SELECT * FROM folders ORDER BY name"); err != nil {
		return nil, fmt.Errorf("load all folders: %w", err)
	}
	return folders, nil
}

// DBDeckRepository implements DeckRepository using MySQL.
type DBDeckRepository struct {
	db *sqlx.DB
}

// NewDBDeckRepository creates a new DBDeckRepository.
func NewDBDeckRepository(db *sqlx.DB) *DBDeckRepository {
	return &DBDeckRepository{db: db}
}

// Create inserts a deck and returns its id.
func (r *DBDeckRepository) Create(ctx context.Context, name string, folderID int64, sourceFilename string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO decks (name, folder_id, source_filename) VALUES (?, ?, ?)",
		name, folderID, sourceFilename)
	if err != nil {
		return 0, fmt.Errorf("insert deck: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("deck last insert id: %w", err)
	}
	return id, nil
}

// Rename updates a deck's name. Returns ErrNotFound for an unknown id.
func (r *DBDeckRepository) Rename(ctx context.Context, deckID int64, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE decks SET name = ? WHERE id = ?", name, deckID)
	if err != nil {
		return fmt.Errorf("rename deck: %w", err)
	}
	return requireRowsAffected(result, "deck")
}

// Move reassigns a deck to another folder.
func (r *DBDeckRepository) Move(ctx context.Context, deckID int64, folderID int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE decks SET folder_id = ? WHERE id = ?", folderID, deckID)
	if err != nil {
		return fmt.Errorf("move deck: %w", err)
	}
	return requireRowsAffected(result, "deck")
}

// Delete removes a deck and, by cascade, its cards and review logs.
func (r *DBDeckRepository) Delete(ctx context.Context, deckID int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM decks WHERE id = ?", deckID)
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	return requireRowsAffected(result, "deck")
}

// FindByFolder returns the decks of one folder ordered by name.
func (r *DBDeckRepository) FindByFolder(ctx context.Context, folderID int64) ([]Deck, error) {
	var decks []Deck
	if err := r.db.SelectContext(ctx, &decks,
		"SELECT * FROM decks WHERE folder_id = ? ORDER BY name", folderID); err != nil {
		return nil, fmt.Errorf("load decks: %w", err)
	}
	return decks, nil
}

func requireRowsAffected(result interface{ RowsAffected() (int64, error) }, entity string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", entity, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
