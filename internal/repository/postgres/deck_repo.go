package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// DeckRepo implements DeckRepository using PostgreSQL.
type DeckRepo struct{ db *DB }

// NewDeckRepo constructs a deck repository.
func NewDeckRepo(db *DB) *DeckRepo { return &DeckRepo{db: db} }

// Create inserts a deck row.
func (r *DeckRepo) Create(ctx context.Context, d *model.Deck) error {
	const q = `
INSERT INTO decks (id, user_id, name, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, d.ID, d.UserID, d.Name, d.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("deck %q: %w", d.Name, errs.ErrAlreadyExists)
	}
	return err
}

// Get selects a deck owned by userID.
func (r *DeckRepo) Get(ctx context.Context, userID, deckID uuid.UUID) (*model.Deck, error) {
	const q = `
SELECT id, user_id, name, created_at
FROM decks WHERE id=$1 AND user_id=$2`
	var d model.Deck
	err := r.db.Pool.QueryRow(ctx, q, deckID, userID).Scan(&d.ID, &d.UserID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// List returns all decks of a user.
func (r *DeckRepo) List(ctx context.Context, userID uuid.UUID) ([]model.Deck, error) {
	const q = `
SELECT id, user_id, name, created_at
FROM decks WHERE user_id=$1
ORDER BY name ASC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Deck
	for rows.Next() {
		var d model.Deck
		if err = rows.Scan(&d.ID, &d.UserID, &d.Name, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
