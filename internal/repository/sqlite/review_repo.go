package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ReviewRepo implements ReviewRepository using SQLite. AUTOINCREMENT ids are
// strictly increasing, so they order reviews that share a timestamp.
type ReviewRepo struct{ db *DB }

// NewReviewRepo constructs a review repository.
func NewReviewRepo(db *DB) *ReviewRepo { return &ReviewRepo{db: db} }

const selectReview = `
SELECT id, user_id, flashcard_id, rating, ease_factor, interval_days, next_review, reviewed_at
FROM card_reviews
WHERE user_id = ? AND flashcard_id = ?
ORDER BY reviewed_at DESC, id DESC`

type rowScanner interface{ Scan(dest ...any) error }

func scanReview(s rowScanner) (model.CardReview, error) {
	var (
		rv                 model.CardReview
		next, reviewedAtMs int64
	)
	err := s.Scan(&rv.ID, &rv.UserID, &rv.FlashcardID, &rv.Rating, &rv.EaseFactor, &rv.Interval, &next, &reviewedAtMs)
	rv.NextReview = fromMillis(next)
	rv.ReviewedAt = fromMillis(reviewedAtMs)
	return rv, err
}

// Insert appends a review row and returns the assigned id.
func (r *ReviewRepo) Insert(ctx context.Context, rv *model.CardReview) (int64, error) {
	const q = `
INSERT INTO card_reviews (user_id, flashcard_id, rating, ease_factor, interval_days, next_review, reviewed_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id`
	var id int64
	err := r.db.conn.QueryRowContext(ctx, q,
		rv.UserID, rv.FlashcardID, rv.Rating, rv.EaseFactor, rv.Interval, toMillis(rv.NextReview), toMillis(rv.ReviewedAt),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	rv.ID = id
	return id, nil
}

// Latest returns the newest review for the pair.
func (r *ReviewRepo) Latest(ctx context.Context, userID, cardID uuid.UUID) (*model.CardReview, error) {
	rv, err := scanReview(r.db.conn.QueryRowContext(ctx, selectReview+` LIMIT 1`, userID, cardID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// ListForCard returns the full history of the pair, newest first.
func (r *ReviewRepo) ListForCard(ctx context.Context, userID, cardID uuid.UUID) ([]model.CardReview, error) {
	rows, err := r.db.conn.QueryContext(ctx, selectReview, userID, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CardReview
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
