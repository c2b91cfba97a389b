package repository

import (
	"context"

	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ReviewRepository is an append-only log of rating events.
type ReviewRepository interface {
	// Insert appends a review row and returns its store-assigned sequence id.
	Insert(ctx context.Context, rv *model.CardReview) (int64, error)

	// Latest returns the newest row for (userID, cardID) or errs.ErrNotFound for a new card.
	Latest(ctx context.Context, userID, cardID uuid.UUID) (*model.CardReview, error)

	// ListForCard returns every row for (userID, cardID), newest first.
	ListForCard(ctx context.Context, userID, cardID uuid.UUID) ([]model.CardReview, error)
}
