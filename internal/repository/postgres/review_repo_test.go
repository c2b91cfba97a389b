package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

var reviewCols = []string{"id", "user_id", "flashcard_id", "rating", "ease_factor", "interval_days", "next_review", "reviewed_at"}

func TestReviewRepo_Insert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewReviewRepo(db)
	ctx := context.Background()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rv := &model.CardReview{
		UserID:      uuid.Must(uuid.NewV4()),
		FlashcardID: uuid.Must(uuid.NewV4()),
		Rating:      3,
		EaseFactor:  250,
		Interval:    13,
		NextReview:  now.AddDate(0, 0, 13),
		ReviewedAt:  now,
	}

	mock.ExpectQuery(`INSERT INTO card_reviews \(user_id, flashcard_id, rating, ease_factor, interval_days, next_review, reviewed_at\) VALUES .* RETURNING id`).
		WithArgs(rv.UserID, rv.FlashcardID, 3, 250, 13, rv.NextReview, rv.ReviewedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := r.Insert(ctx, rv)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
	require.Equal(t, int64(42), rv.ID)

	mock.ExpectQuery(`INSERT INTO card_reviews`).
		WithArgs(rv.UserID, rv.FlashcardID, 3, 250, 13, rv.NextReview, rv.ReviewedAt).
		WillReturnError(errors.New("conn reset"))
	_, err = r.Insert(ctx, rv)
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepo_Latest(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewReviewRepo(db)
	ctx := context.Background()

	uid := uuid.Must(uuid.NewV4())
	cid := uuid.Must(uuid.NewV4())
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, flashcard_id, rating, ease_factor, interval_days, next_review, reviewed_at FROM card_reviews WHERE user_id=\$1 AND flashcard_id=\$2 ORDER BY reviewed_at DESC, id DESC LIMIT 1`).
		WithArgs(uid, cid).
		WillReturnRows(pgxmock.NewRows(reviewCols).
			AddRow(int64(7), uid, cid, 4, 265, 3, at.AddDate(0, 0, 3), at))

	rv, err := r.Latest(ctx, uid, cid)
	require.NoError(t, err)
	require.Equal(t, int64(7), rv.ID)
	require.Equal(t, 265, rv.EaseFactor)
	require.Equal(t, at.AddDate(0, 0, 3), rv.NextReview)

	mock.ExpectQuery(`FROM card_reviews WHERE user_id=\$1 AND flashcard_id=\$2`).
		WithArgs(uid, cid).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Latest(ctx, uid, cid)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepo_ListForCard(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewReviewRepo(db)
	ctx := context.Background()

	uid := uuid.Must(uuid.NewV4())
	cid := uuid.Must(uuid.NewV4())
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM card_reviews WHERE user_id=\$1 AND flashcard_id=\$2 ORDER BY reviewed_at DESC, id DESC$`).
		WithArgs(uid, cid).
		WillReturnRows(pgxmock.NewRows(reviewCols).
			AddRow(int64(2), uid, cid, 1, 230, 1, at.AddDate(0, 0, 1), at).
			AddRow(int64(1), uid, cid, 3, 250, 1, at, at.AddDate(0, 0, -1)))

	out, err := r.ListForCard(ctx, uid, cid)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, int64(2), out[0].ID)
	require.Equal(t, 1, out[0].Rating)

	require.NoError(t, mock.ExpectationsWereMet())
}
