package postgres

import (
	"context"
	"errors"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// ReviewRepo implements ReviewRepository using PostgreSQL.
// Rows are never updated; BIGSERIAL ids break ties between equal reviewed_at values.
type ReviewRepo struct{ db *DB }

// NewReviewRepo constructs a review repository.
func NewReviewRepo(db *DB) *ReviewRepo { return &ReviewRepo{db: db} }

const reviewColumns = `id, user_id, flashcard_id, rating, ease_factor, interval_days, next_review, reviewed_at`

// Insert appends a review row and returns the assigned id.
func (r *ReviewRepo) Insert(ctx context.Context, rv *model.CardReview) (int64, error) {
	const q = `
INSERT INTO card_reviews (user_id, flashcard_id, rating, ease_factor, interval_days, next_review, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	var id int64
	err := r.db.Pool.QueryRow(ctx, q,
		rv.UserID, rv.FlashcardID, rv.Rating, rv.EaseFactor, rv.Interval, rv.NextReview, rv.ReviewedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	rv.ID = id
	return id, nil
}

// Latest returns the newest review for the pair.
func (r *ReviewRepo) Latest(ctx context.Context, userID, cardID uuid.UUID) (*model.CardReview, error) {
	const q = `
SELECT ` + reviewColumns + `
FROM card_reviews
WHERE user_id=$1 AND flashcard_id=$2
ORDER BY reviewed_at DESC, id DESC
LIMIT 1`
	var rv model.CardReview
	err := r.db.Pool.QueryRow(ctx, q, userID, cardID).Scan(
		&rv.ID, &rv.UserID, &rv.FlashcardID, &rv.Rating, &rv.EaseFactor, &rv.Interval, &rv.NextReview, &rv.ReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// ListForCard returns the full history of the pair, newest first.
func (r *ReviewRepo) ListForCard(ctx context.Context, userID, cardID uuid.UUID) ([]model.CardReview, error) {
	const q = `
SELECT ` + reviewColumns + `
FROM card_reviews
WHERE user_id=$1 AND flashcard_id=$2
ORDER BY reviewed_at DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CardReview
	for rows.Next() {
		var rv model.CardReview
		if err = rows.Scan(
			&rv.ID, &rv.UserID, &rv.FlashcardID, &rv.Rating, &rv.EaseFactor, &rv.Interval, &rv.NextReview, &rv.ReviewedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
