// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
)

// DeckRepository stores decks. Every read is scoped to the owning user.
type DeckRepository interface {
	// Create inserts a new deck; a duplicate name for the same user yields errs.ErrAlreadyExists.
	Create(ctx context.Context, d *model.Deck) error
	// Get loads a deck owned by userID.
	Get(ctx context.Context, userID, deckID uuid.UUID) (*model.Deck, error)
	// List returns the user's decks ordered by name.
	List(ctx context.Context, userID uuid.UUID) ([]model.Deck, error)
}
