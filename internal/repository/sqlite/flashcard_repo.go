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

// FlashcardRepo implements FlashcardRepository using SQLite.
type FlashcardRepo struct{ db *DB }

// NewFlashcardRepo constructs a flashcard repository.
func NewFlashcardRepo(db *DB) *FlashcardRepo { return &FlashcardRepo{db: db} }

const insertCard = `
INSERT INTO flashcards (id, deck_id, front, back, exam_relevant, difficulty, content_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func cardArgs(c *model.Flashcard) []any {
	return []any{
		c.ID, c.DeckID, c.Front, c.Back, boolToInt(c.ExamRelevant), string(c.Difficulty), c.ContentHash,
		toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	}
}

const cardColumns = `f.id, f.deck_id, f.front, f.back, f.exam_relevant, f.difficulty, f.content_hash, f.created_at, f.updated_at`

// cardDest collects the scan targets for cardColumns.
type cardDest struct {
	c                  model.Flashcard
	exam               int
	diff               string
	createdMs, updated int64
}

func (d *cardDest) targets() []any {
	return []any{&d.c.ID, &d.c.DeckID, &d.c.Front, &d.c.Back, &d.exam, &d.diff, &d.c.ContentHash, &d.createdMs, &d.updated}
}

func (d *cardDest) card() model.Flashcard {
	c := d.c
	c.ExamRelevant = d.exam != 0
	c.Difficulty = model.Difficulty(d.diff)
	c.CreatedAt = fromMillis(d.createdMs)
	c.UpdatedAt = fromMillis(d.updated)
	return c
}

// Create inserts a single card.
func (r *FlashcardRepo) Create(ctx context.Context, c *model.Flashcard) error {
	_, err := r.db.conn.ExecContext(ctx, insertCard, cardArgs(c)...)
	if isUniqueViolation(err) {
		return fmt.Errorf("card in deck %s: %w", c.DeckID, errs.ErrAlreadyExists)
	}
	return err
}

// CreateBatch inserts cards in one transaction, skipping content duplicates.
func (r *FlashcardRepo) CreateBatch(ctx context.Context, cards []model.Flashcard) (int, error) {
	const q = insertCard + `
ON CONFLICT (deck_id, content_hash) DO NOTHING`
	created := 0
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for i := range cards {
			res, err := tx.ExecContext(ctx, q, cardArgs(&cards[i])...)
			if err != nil {
				return fmt.Errorf("card[%d]: %w", i, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			created += int(n)
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
SELECT ` + cardColumns + `
FROM flashcards f
JOIN decks d ON d.id = f.deck_id
WHERE f.id = ? AND d.user_id = ?`
	var dst cardDest
	if err := r.db.conn.QueryRowContext(ctx, q, cardID, userID).Scan(dst.targets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	c := dst.card()
	return &c, nil
}

// Update replaces the content columns of a card owned by userID.
func (r *FlashcardRepo) Update(ctx context.Context, userID uuid.UUID, c *model.Flashcard) error {
	const q = `
UPDATE flashcards
SET front = ?, back = ?, exam_relevant = ?, difficulty = ?, content_hash = ?, updated_at = ?
WHERE id = ? AND deck_id IN (SELECT id FROM decks WHERE user_id = ?)`
	res, err := r.db.conn.ExecContext(ctx, q,
		c.Front, c.Back, boolToInt(c.ExamRelevant), string(c.Difficulty), c.ContentHash, toMillis(c.UpdatedAt),
		c.ID, userID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("card %s: %w", c.ID, errs.ErrAlreadyExists)
		}
		return err
	}
	return requireAffected(res)
}

// Delete removes a card owned by userID together with its reviews.
func (r *FlashcardRepo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	const q = `DELETE FROM flashcards WHERE id = ? AND deck_id IN (SELECT id FROM decks WHERE user_id = ?)`
	res, err := r.db.conn.ExecContext(ctx, q, cardID, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListWithLatestReview returns the user's cards joined with their latest review.
func (r *FlashcardRepo) ListWithLatestReview(
	ctx context.Context, userID uuid.UUID, deckID *uuid.UUID,
) ([]model.CardWithReview, error) {
	q := `
SELECT ` + cardColumns + `,
       r.id, r.rating, r.ease_factor, r.interval_days, r.next_review, r.reviewed_at
FROM flashcards f
JOIN decks d ON d.id = f.deck_id
LEFT JOIN card_reviews r ON r.id = (
    SELECT cr.id FROM card_reviews cr
    WHERE cr.user_id = ? AND cr.flashcard_id = f.id
    ORDER BY cr.reviewed_at DESC, cr.id DESC
    LIMIT 1
)
WHERE d.user_id = ?`
	args := []any{userID, userID}
	if deckID != nil {
		q += ` AND f.deck_id = ?`
		args = append(args, *deckID)
	}
	q += ` ORDER BY f.created_at ASC, f.id ASC`

	rows, err := r.db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CardWithReview
	for rows.Next() {
		var (
			dst                      cardDest
			rvID, rating, ease, ivl  sql.NullInt64
			nextReview, reviewedAtMs sql.NullInt64
		)
		targets := append(dst.targets(), &rvID, &rating, &ease, &ivl, &nextReview, &reviewedAtMs)
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		item := model.CardWithReview{Card: dst.card()}
		if rvID.Valid {
			item.Latest = &model.CardReview{
				ID:          rvID.Int64,
				UserID:      userID,
				FlashcardID: item.Card.ID,
				Rating:      int(rating.Int64),
				EaseFactor:  int(ease.Int64),
				Interval:    int(ivl.Int64),
				NextReview:  fromMillis(nextReview.Int64),
				ReviewedAt:  fromMillis(reviewedAtMs.Int64),
			}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
