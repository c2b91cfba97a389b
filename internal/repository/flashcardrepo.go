package repository

import (
	"context"

	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
)

// FlashcardRepository stores card content. Ownership is resolved through the card's deck.
type FlashcardRepository interface {
	// Create inserts a card; a card with the same content hash in the deck yields errs.ErrAlreadyExists.
	Create(ctx context.Context, c *model.Flashcard) error

	// CreateBatch inserts cards in one transaction, silently skipping content duplicates.
	// It returns the number of rows actually inserted.
	CreateBatch(ctx context.Context, cards []model.Flashcard) (int, error)

	// Get loads a card that belongs to one of userID's decks.
	Get(ctx context.Context, userID, cardID uuid.UUID) (*model.Flashcard, error)

	// Update replaces card content. Scheduling rows are untouched.
	Update(ctx context.Context, userID uuid.UUID, c *model.Flashcard) error

	// Delete removes a card together with its review rows.
	Delete(ctx context.Context, userID, cardID uuid.UUID) error

	// ListWithLatestReview returns the user's cards (optionally one deck) each paired
	// with the user's latest review, picked by (reviewed_at DESC, id DESC).
	ListWithLatestReview(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID) ([]model.CardWithReview, error)
}
