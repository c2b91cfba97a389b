package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// FlashcardRepo implements FlashcardRepository using PostgreSQL.
type FlashcardRepo struct{ db *DB }

// NewFlashcardRepo constructs a flashcard repository.
func NewFlashcardRepo(db *DB) *FlashcardRepo { return &FlashcardRepo{db: db} }

const insertCard = `
INSERT INTO flashcards (id, deck_id, front, back, exam_relevant, difficulty, content_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func cardArgs(c *model.Flashcard) []any {
	return []any{c.ID, c.DeckID, c.Front, c.Back, c.ExamRelevant, string(c.Difficulty), c.ContentHash, c.CreatedAt, c.UpdatedAt}
}

// Create inserts a single card.
func (r *FlashcardRepo) Create(ctx context.Context, c *model.Flashcard) error {
	_, err := r.db.Pool.Exec(ctx, insertCard, cardArgs(c)...)
	if isUniqueViolation(err) {
		return fmt.Errorf("card in deck %s: %w", c.DeckID, errs.ErrAlreadyExists)
	}
	return err
}

// CreateBatch inserts cards in a single transaction, skipping content duplicates.
func (r *FlashcardRepo) CreateBatch(ctx context.Context, cards []model.Flashcard) (int, error) {
	const q = insertCard + `
ON CONFLICT (deck_id, content_hash) DO NOTHING`
	created := 0
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		for i := range cards {
			tag, err := tx.Exec(ctx, q, cardArgs(&cards[i])...)
			if err != nil {
				return fmt.Errorf("card[%d]: %w", i, err)
			}
			created += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// Get selects a card through its owning deck.
func (r *FlashcardRepo) Get(ctx context.Context, userID, cardID uuid.UUID) (*model.Flashcard, error) {
	const q = `
SELECT f.id, f.deck_id, f.front, f.back, f.exam_relevant, f.difficulty, f.content_hash, f.created_at, f.updated_at
FROM flashcards f
JOIN decks d ON d.id = f.deck_id
WHERE f.id=$1 AND d.user_id=$2`
	var (
		c    model.Flashcard
		diff string
	)
	err := r.db.Pool.QueryRow(ctx, q, cardID, userID).Scan(
		&c.ID, &c.DeckID, &c.Front, &c.Back, &c.ExamRelevant, &diff, &c.ContentHash, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	c.Difficulty = model.Difficulty(diff)
	return &c, nil
}

// Update replaces the content columns of a card owned by userID.
func (r *FlashcardRepo) Update(ctx context.Context, userID uuid.UUID, c *model.Flashcard) error {
	const q = `
UPDATE flashcards
SET front=$3, back=$4, exam_relevant=$5, difficulty=$6, content_hash=$7, updated_at=$8
WHERE id=$1 AND deck_id IN (SELECT id FROM decks WHERE user_id=$2)`
	tag, err := r.db.Pool.Exec(ctx, q,
		c.ID, userID, c.Front, c.Back, c.ExamRelevant, string(c.Difficulty), c.ContentHash, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("card %s: %w", c.ID, errs.ErrAlreadyExists)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a card owned by userID. Reviews go with it via ON DELETE CASCADE.
func (r *FlashcardRepo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	const q = `
DELETE FROM flashcards
WHERE id=$1 AND deck_id IN (SELECT id FROM decks WHERE user_id=$2)`
	tag, err := r.db.Pool.Exec(ctx, q, cardID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

const listWithLatest = `
SELECT f.id, f.deck_id, f.front, f.back, f.exam_relevant, f.difficulty, f.content_hash, f.created_at, f.updated_at,
       r.id, r.rating, r.ease_factor, r.interval_days, r.next_review, r.reviewed_at
FROM flashcards f
JOIN decks d ON d.id = f.deck_id
LEFT JOIN LATERAL (
    SELECT cr.id, cr.rating, cr.ease_factor, cr.interval_days, cr.next_review, cr.reviewed_at
    FROM card_reviews cr
    WHERE cr.user_id = $1 AND cr.flashcard_id = f.id
    ORDER BY cr.reviewed_at DESC, cr.id DESC
    LIMIT 1
) r ON true
WHERE d.user_id = $1`

// ListWithLatestReview returns the user's cards joined with their latest review.
func (r *FlashcardRepo) ListWithLatestReview(
	ctx context.Context, userID uuid.UUID, deckID *uuid.UUID,
) ([]model.CardWithReview, error) {
	q := listWithLatest
	args := []any{userID}
	if deckID != nil {
		q += ` AND f.deck_id = $2`
		args = append(args, *deckID)
	}
	q += `
ORDER BY f.created_at ASC, f.id ASC`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CardWithReview
	for rows.Next() {
		var (
			c          model.Flashcard
			diff       string
			rvID       *int64
			rating     *int
			ease       *int
			interval   *int
			nextReview *time.Time
			reviewedAt *time.Time
		)
		if err = rows.Scan(
			&c.ID, &c.DeckID, &c.Front, &c.Back, &c.ExamRelevant, &diff, &c.ContentHash, &c.CreatedAt, &c.UpdatedAt,
			&rvID, &rating, &ease, &interval, &nextReview, &reviewedAt,
		); err != nil {
			return nil, err
		}
		c.Difficulty = model.Difficulty(diff)
		item := model.CardWithReview{Card: c}
		if rvID != nil {
			item.Latest = &model.CardReview{
				ID:          *rvID,
				UserID:      userID,
				FlashcardID: c.ID,
				Rating:      deref(rating),
				EaseFactor:  deref(ease),
				Interval:    deref(interval),
				NextReview:  deref(nextReview),
				ReviewedAt:  deref(reviewedAt),
			}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
