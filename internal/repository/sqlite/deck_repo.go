package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
)

// DeckRepo implements DeckRepository using SQLite.
type DeckRepo struct{ db *DB }

// NewDeckRepo constructs a deck repository.
func NewDeckRepo(db *DB) *DeckRepo { return &DeckRepo{db: db} }

// Create inserts a deck row.
func (r *DeckRepo) Create(ctx context.Context, d *model.Deck) error {
	const q = `INSERT INTO decks (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.conn.ExecContext(ctx, q, d.ID, d.UserID, d.Name, toMillis(d.CreatedAt))
	if isUniqueViolation(err) {
		return fmt.Errorf("deck %q: %w", d.Name, errs.ErrAlreadyExists)
	}
	return err
}

// Get selects a deck owned by userID.
func (r *DeckRepo) Get(ctx context.Context, userID, deckID uuid.UUID) (*model.Deck, error) {
	const q = `SELECT id, user_id, name, created_at FROM decks WHERE id = ? AND user_id = ?`
	var (
		d  model.Deck
		ts int64
	)
	if err := r.db.conn.QueryRowContext(ctx, q, deckID, userID).Scan(&d.ID, &d.UserID, &d.Name, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	d.CreatedAt = fromMillis(ts)
	return &d, nil
}

// List returns all decks of a user ordered by name.
func (r *DeckRepo) List(ctx context.Context, userID uuid.UUID) ([]model.Deck, error) {
	const q = `SELECT id, user_id, name, created_at FROM decks WHERE user_id = ? ORDER BY name ASC`
	rows, err := r.db.conn.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Deck
	for rows.Next() {
		var (
			d  model.Deck
			ts int64
		)
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &ts); err != nil {
			return nil, err
		}
		d.CreatedAt = fromMillis(ts)
		out = append(out, d)
	}
	return out, rows.Err()
}
