package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

var cardCols = []string{"id", "deck_id", "front", "back", "exam_relevant", "difficulty", "content_hash", "created_at", "updated_at"}

func sampleCard() *model.Flashcard {
	ts := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	return &model.Flashcard{
		ID:          uuid.Must(uuid.NewV4()),
		DeckID:      uuid.Must(uuid.NewV4()),
		Front:       "2+2?",
		Back:        "4",
		Difficulty:  model.DifficultyEasy,
		ContentHash: "abc",
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestFlashcardRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()
	c := sampleCard()

	mock.ExpectExec(`INSERT INTO flashcards \(id, deck_id, front, back, exam_relevant, difficulty, content_hash, created_at, updated_at\)`).
		WithArgs(c.ID, c.DeckID, c.Front, c.Back, false, "easy", "abc", c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, c))

	mock.ExpectExec(`INSERT INTO flashcards`).
		WithArgs(c.ID, c.DeckID, c.Front, c.Back, false, "easy", "abc", c.CreatedAt, c.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(ctx, c), errs.ErrAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardRepo_CreateBatch(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()

	a, b := sampleCard(), sampleCard()
	b.DeckID = a.DeckID

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO flashcards .* ON CONFLICT \(deck_id, content_hash\) DO NOTHING`).
		WithArgs(a.ID, a.DeckID, a.Front, a.Back, false, "easy", "abc", a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`ON CONFLICT \(deck_id, content_hash\) DO NOTHING`).
		WithArgs(b.ID, b.DeckID, b.Front, b.Back, false, "easy", "abc", b.CreatedAt, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	n, err := r.CreateBatch(ctx, []model.Flashcard{*a, *b})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardRepo_CreateBatch_RollbackOnError(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()
	a := sampleCard()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO flashcards`).
		WithArgs(a.ID, a.DeckID, a.Front, a.Back, false, "easy", "abc", a.CreatedAt, a.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	n, err := r.CreateBatch(ctx, []model.Flashcard{*a})
	require.Error(t, err)
	require.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardRepo_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()
	c := sampleCard()
	uid := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`FROM flashcards f JOIN decks d ON d.id = f.deck_id WHERE f.id=\$1 AND d.user_id=\$2`).
		WithArgs(c.ID, uid).
		WillReturnRows(pgxmock.NewRows(cardCols).
			AddRow(c.ID, c.DeckID, c.Front, c.Back, true, "hard", c.ContentHash, c.CreatedAt, c.UpdatedAt))
	got, err := r.Get(ctx, uid, c.ID)
	require.NoError(t, err)
	require.Equal(t, model.DifficultyHard, got.Difficulty)
	require.True(t, got.ExamRelevant)

	mock.ExpectQuery(`FROM flashcards f`).
		WithArgs(c.ID, uid).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, uid, c.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardRepo_Update(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()
	c := sampleCard()
	uid := uuid.Must(uuid.NewV4())

	const q = `UPDATE flashcards SET front=\$3, back=\$4, exam_relevant=\$5, difficulty=\$6, content_hash=\$7, updated_at=\$8 WHERE id=\$1 AND deck_id IN \(SELECT id FROM decks WHERE user_id=\$2\)`
	mock.ExpectExec(q).
		WithArgs(c.ID, uid, c.Front, c.Back, false, "easy", "abc", c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Update(ctx, uid, c))

	mock.ExpectExec(q).
		WithArgs(c.ID, uid, c.Front, c.Back, false, "easy", "abc", c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.Update(ctx, uid, c), errs.ErrNotFound)

	mock.ExpectExec(q).
		WithArgs(c.ID, uid, c.Front, c.Back, false, "easy", "abc", c.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Update(ctx, uid, c), errs.ErrAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()
	uid, cid := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())

	mock.ExpectExec(`DELETE FROM flashcards WHERE id=\$1 AND deck_id IN \(SELECT id FROM decks WHERE user_id=\$2\)`).
		WithArgs(cid, uid).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, uid, cid))

	mock.ExpectExec(`DELETE FROM flashcards`).
		WithArgs(cid, uid).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, uid, cid), errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardRepo_ListWithLatestReview(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()

	uid := uuid.Must(uuid.NewV4())
	fresh, seen := sampleCard(), sampleCard()
	seen.DeckID = fresh.DeckID

	var (
		rvID       = int64(9)
		rating     = 3
		ease       = 250
		interval   = 13
		reviewedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		nextReview = reviewedAt.AddDate(0, 0, 13)
	)
	cols := append(append([]string{}, cardCols...), "id", "rating", "ease_factor", "interval_days", "next_review", "reviewed_at")

	mock.ExpectQuery(`LEFT JOIN LATERAL \(.*ORDER BY cr.reviewed_at DESC, cr.id DESC LIMIT 1 \) r ON true WHERE d.user_id = \$1 AND f.deck_id = \$2 ORDER BY f.created_at ASC, f.id ASC`).
		WithArgs(uid, fresh.DeckID).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(fresh.ID, fresh.DeckID, fresh.Front, fresh.Back, false, "", fresh.ContentHash, fresh.CreatedAt, fresh.UpdatedAt,
				nil, nil, nil, nil, nil, nil).
			AddRow(seen.ID, seen.DeckID, seen.Front, seen.Back, false, "medium", seen.ContentHash, seen.CreatedAt, seen.UpdatedAt,
				&rvID, &rating, &ease, &interval, &nextReview, &reviewedAt))

	deck := fresh.DeckID
	out, err := r.ListWithLatestReview(ctx, uid, &deck)
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Equal(t, fresh.ID, out[0].Card.ID)
	require.Nil(t, out[0].Latest)

	require.Equal(t, seen.ID, out[1].Card.ID)
	require.NotNil(t, out[1].Latest)
	require.Equal(t, int64(9), out[1].Latest.ID)
	require.Equal(t, 250, out[1].Latest.EaseFactor)
	require.Equal(t, nextReview, out[1].Latest.NextReview)
	require.Equal(t, uid, out[1].Latest.UserID)
	require.Equal(t, model.DifficultyMedium, out[1].Card.Difficulty)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlashcardRepo_ListWithLatestReview_AllDecks(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFlashcardRepo(db)
	ctx := context.Background()
	uid := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`WHERE d.user_id = \$1 ORDER BY f.created_at ASC, f.id ASC`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows(append(append([]string{}, cardCols...),
			"id", "rating", "ease_factor", "interval_days", "next_review", "reviewed_at")))

	out, err := r.ListWithLatestReview(ctx, uid, nil)
	require.NoError(t, err)
	require.Empty(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}
