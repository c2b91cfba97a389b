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

func TestDeckRepo_Create_OK_and_Duplicate(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewDeckRepo(db)
	ctx := context.Background()

	d := &model.Deck{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    uuid.Must(uuid.NewV4()),
		Name:      "Go",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO decks \(id, user_id, name, created_at\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(d.ID, d.UserID, d.Name, d.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, d))

	mock.ExpectExec(`INSERT INTO decks`).
		WithArgs(d.ID, d.UserID, d.Name, d.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(ctx, d), errs.ErrAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckRepo_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewDeckRepo(db)
	ctx := context.Background()

	uid := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, name, created_at FROM decks WHERE id=\$1 AND user_id=\$2`).
		WithArgs(id, uid).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "created_at"}).AddRow(id, uid, "Go", ts))
	d, err := r.Get(ctx, uid, id)
	require.NoError(t, err)
	require.Equal(t, "Go", d.Name)
	require.Equal(t, ts, d.CreatedAt)

	mock.ExpectQuery(`FROM decks WHERE id=\$1 AND user_id=\$2`).
		WithArgs(id, uid).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, uid, id)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckRepo_List(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewDeckRepo(db)
	ctx := context.Background()

	uid := uuid.Must(uuid.NewV4())
	a, b := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`FROM decks WHERE user_id=\$1 ORDER BY name ASC`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "created_at"}).
			AddRow(a, uid, "Algebra", ts).
			AddRow(b, uid, "Biology", ts))
	out, err := r.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Biology", out[1].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}
