package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/and161185/flashrecall/internal/srs"
)

var t0 = time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)

func newReviewSvc(t *testing.T, st *memStore, clk *clock) *ReviewServiceImpl {
	t.Helper()
	return NewReviewService(st, st, ReviewConfig{Now: clk.Now, DefaultLimit: 10, MaxLimit: 20}, zaptest.NewLogger(t))
}

func TestNewReviewService_Defaults(t *testing.T) {
	s := NewReviewService(newMemStore(), newMemStore(), ReviewConfig{}, nil)
	if s.defaultLimit != defaultDueLimit || s.maxLimit != defaultMaxDueLimit {
		t.Fatalf("limits: got %d/%d", s.defaultLimit, s.maxLimit)
	}
	if s.queryTimeout != defaultQueryTimeout {
		t.Fatalf("timeout: got %v", s.queryTimeout)
	}
	if s.params != srs.DefaultParams() {
		t.Fatalf("params not defaulted")
	}
}

func TestRateCard_ValidationBeforeStorage(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	ctx := context.Background()
	user := uuid.Must(uuid.NewV4())
	card := uuid.Must(uuid.NewV4())

	if _, err := s.RateCard(ctx, uuid.Nil, card, srs.Good); !errors.Is(err, errs.ErrInvalidUserID) {
		t.Fatalf("want ErrInvalidUserID, got %v", err)
	}
	if _, err := s.RateCard(ctx, user, uuid.Nil, srs.Good); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
	for _, r := range []srs.Rating{0, 5} {
		_, err := s.RateCard(ctx, user, card, r)
		if !errors.Is(err, errs.ErrInvalidRating) {
			t.Fatalf("rating %d: want ErrInvalidRating, got %v", r, err)
		}
		if want := "must be between 1 and 4"; !strings.Contains(err.Error(), want) {
			t.Fatalf("message %q lacks %q", err.Error(), want)
		}
	}
	if st.getCalls+st.latestCalls+st.insertCalls != 0 {
		t.Fatalf("storage touched on invalid input")
	}
}

func TestRateCard_UnknownCard(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	owner := uuid.Must(uuid.NewV4())
	c := st.addCard(owner, t0)

	_, err := s.RateCard(context.Background(), uuid.Must(uuid.NewV4()), c.ID, srs.Good)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound for another user's card, got %v", err)
	}
	if st.insertCalls != 0 {
		t.Fatalf("insert must not happen")
	}
}

func TestRateCard_NewCard(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)

	res, err := s.RateCard(context.Background(), user, c.ID, srs.Good)
	if err != nil {
		t.Fatalf("RateCard: %v", err)
	}
	if res.Interval < 1 {
		t.Fatalf("first review interval must be >= 1, got %d", res.Interval)
	}
	if res.EaseFactor != 2.5 {
		t.Fatalf("ease: want 2.5, got %v", res.EaseFactor)
	}
	if !res.NextReview.Equal(t0.AddDate(0, 0, res.Interval)) {
		t.Fatalf("next review: got %v", res.NextReview)
	}
	if res.ReviewID != 1 {
		t.Fatalf("review id: got %d", res.ReviewID)
	}
}

func TestRateCard_UsesLatestReview(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)

	// An older row and the latest row with (interval 5, ease 2.5).
	_, _ = st.Insert(context.Background(), &model.CardReview{UserID: user, FlashcardID: c.ID, Rating: 1, EaseFactor: 130, Interval: 1, NextReview: t0, ReviewedAt: t0.AddDate(0, 0, -10)})
	_, _ = st.Insert(context.Background(), &model.CardReview{UserID: user, FlashcardID: c.ID, Rating: 3, EaseFactor: 250, Interval: 5, NextReview: t0, ReviewedAt: t0.AddDate(0, 0, -5)})

	res, err := s.RateCard(context.Background(), user, c.ID, srs.Good)
	if err != nil {
		t.Fatalf("RateCard: %v", err)
	}
	if res.Interval != 13 || res.EaseFactor != 2.5 {
		t.Fatalf("want (13, 2.5), got (%d, %v)", res.Interval, res.EaseFactor)
	}
	latest, _ := st.Latest(context.Background(), user, c.ID)
	if latest.EaseFactor != 250 || latest.ID != res.ReviewID {
		t.Fatalf("stored row: %+v", latest)
	}
	if n := len(st.history(user, c.ID)); n != 3 {
		t.Fatalf("append-only log: want 3 rows, got %d", n)
	}
}

func TestRateCard_ClampsLegacyEase(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)
	_, _ = st.Insert(context.Background(), &model.CardReview{UserID: user, FlashcardID: c.ID, Rating: 4, EaseFactor: 500, Interval: 10, NextReview: t0, ReviewedAt: t0.Add(-time.Hour)})

	res, err := s.RateCard(context.Background(), user, c.ID, srs.Easy)
	if err != nil {
		t.Fatalf("RateCard: %v", err)
	}
	if res.EaseFactor != srs.MaxEaseFactor {
		t.Fatalf("ease must be clamped to %v, got %v", srs.MaxEaseFactor, res.EaseFactor)
	}
}

func TestRateCard_InsertFailure(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	core, logs := observer.New(zapcore.ErrorLevel)
	s := NewReviewService(st, st, ReviewConfig{Now: (&clock{t: t0}).Now}, zap.New(core))
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)
	st.insertErr = errors.New("disk full")

	res, err := s.RateCard(context.Background(), user, c.ID, srs.Good)
	if !errors.Is(err, errs.ErrStorage) {
		t.Fatalf("want ErrStorage, got %v", err)
	}
	if res != (model.ReviewResult{}) {
		t.Fatalf("no progress may be reported on failure, got %+v", res)
	}
	if logs.FilterMessage("save review failed").Len() != 1 {
		t.Fatalf("expected error log")
	}
}

func TestRateCard_LatestReadFailure(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)
	st.latestErr = errors.New("timeout")

	_, err := s.RateCard(context.Background(), user, c.ID, srs.Good)
	if !errors.Is(err, errs.ErrStorageRead) || errors.Is(err, errs.ErrStorage) {
		t.Fatalf("want ErrStorageRead only, got %v", err)
	}
	if st.insertCalls != 0 {
		t.Fatalf("insert must not happen")
	}
}

func TestRateCard_CardReadFailure(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)
	st.getErr = errors.New("conn reset")

	_, err := s.RateCard(context.Background(), user, c.ID, srs.Good)
	if !errors.Is(err, errs.ErrStorageRead) || errors.Is(err, errs.ErrStorage) {
		t.Fatalf("want ErrStorageRead only, got %v", err)
	}
	if st.insertCalls != 0 {
		t.Fatalf("insert must not happen")
	}
}

func TestDueCards_RoundTrip(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	clk := &clock{t: t0}
	s := newReviewSvc(t, st, clk)
	ctx := context.Background()
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)

	_, _ = st.Insert(ctx, &model.CardReview{UserID: user, FlashcardID: c.ID, Rating: 3, EaseFactor: 250, Interval: 5, NextReview: t0, ReviewedAt: t0.AddDate(0, 0, -5)})
	res, err := s.RateCard(ctx, user, c.ID, srs.Good)
	if err != nil {
		t.Fatalf("RateCard: %v", err)
	}

	clk.Advance(time.Duration(res.Interval-1) * 24 * time.Hour)
	due, total, err := s.DueCards(ctx, model.DueQuery{UserID: user})
	if err != nil || total != 0 || len(due) != 0 {
		t.Fatalf("before next review: want nothing due, got %d/%d err=%v", len(due), total, err)
	}

	clk.Advance(24 * time.Hour)
	due, total, err = s.DueCards(ctx, model.DueQuery{UserID: user})
	if err != nil || total != 1 || len(due) != 1 {
		t.Fatalf("at next review: want 1 due, got %d/%d err=%v", len(due), total, err)
	}
	if due[0].Card.ID != c.ID || due[0].Priority != int(srs.PriorityDueToday) {
		t.Fatalf("unexpected due card %+v", due[0])
	}

	clk.Advance(10 * 24 * time.Hour)
	due, _, _ = s.DueCards(ctx, model.DueQuery{UserID: user})
	if len(due) != 1 || due[0].Priority != int(srs.PrioritySeverelyOverdue) || due[0].OverdueDays != 10 {
		t.Fatalf("after 10 days: %+v", due)
	}
}

func TestDueCards_NewAndTomorrow(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	ctx := context.Background()
	user := uuid.Must(uuid.NewV4())

	fresh := st.addCard(user, t0.AddDate(0, 0, -2))
	later := st.addCard(user, t0.AddDate(0, 0, -3))
	_, _ = st.Insert(ctx, &model.CardReview{UserID: user, FlashcardID: later.ID, Rating: 3, EaseFactor: 250, Interval: 1, NextReview: t0.AddDate(0, 0, 1), ReviewedAt: t0})

	due, total, err := s.DueCards(ctx, model.DueQuery{UserID: user})
	if err != nil {
		t.Fatalf("DueCards: %v", err)
	}
	if total != 1 || len(due) != 1 || due[0].Card.ID != fresh.ID {
		t.Fatalf("want exactly the new card, got %+v", due)
	}
	if due[0].Latest != nil || due[0].Priority != int(srs.PriorityNew) {
		t.Fatalf("new card fields: %+v", due[0])
	}
}

func TestDueCards_DeckScopeAndLimit(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	s := newReviewSvc(t, st, &clock{t: t0})
	ctx := context.Background()
	user := uuid.Must(uuid.NewV4())

	var first model.Flashcard
	for i := 0; i < 25; i++ {
		c := st.addCard(user, t0.Add(time.Duration(i)*time.Minute))
		if i == 0 {
			first = c
		}
	}

	due, total, err := s.DueCards(ctx, model.DueQuery{UserID: user})
	if err != nil || total != 25 || len(due) != 10 {
		t.Fatalf("default limit: got %d/%d err=%v", len(due), total, err)
	}
	due, _, _ = s.DueCards(ctx, model.DueQuery{UserID: user, Limit: 100})
	if len(due) != 20 {
		t.Fatalf("max limit: got %d", len(due))
	}
	if _, _, err := s.DueCards(ctx, model.DueQuery{UserID: user, Limit: -1}); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("negative limit: %v", err)
	}

	deck := first.DeckID
	due, total, _ = s.DueCards(ctx, model.DueQuery{UserID: user, DeckID: &deck})
	if total != 1 || due[0].Card.ID != first.ID {
		t.Fatalf("deck scope: %+v", due)
	}
}

func TestDueCards_InvalidUser(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	st.listErr = errors.New("must not be called")
	s := newReviewSvc(t, st, &clock{t: t0})
	if _, _, err := s.DueCards(context.Background(), model.DueQuery{}); !errors.Is(err, errs.ErrInvalidUserID) {
		t.Fatalf("want ErrInvalidUserID, got %v", err)
	}
}

func TestDueCards_ReadFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	st.listErr = context.DeadlineExceeded
	core, logs := observer.New(zapcore.WarnLevel)
	s := NewReviewService(st, st, ReviewConfig{Now: (&clock{t: t0}).Now}, zap.New(core))
	user := uuid.Must(uuid.NewV4())
	st.addCard(user, t0)

	due, total, err := s.DueCards(context.Background(), model.DueQuery{UserID: user})
	if err != nil {
		t.Fatalf("read failure must not surface, got %v", err)
	}
	if len(due) != 0 || total != 0 {
		t.Fatalf("want empty result, got %d/%d", len(due), total)
	}
	entries := logs.FilterMessage("due cards query failed, returning empty result").All()
	if len(entries) != 1 || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("want one WARN entry, got %+v", entries)
	}
}

func TestDueCards_QueryTimeoutBoundsRead(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	st.blockList = true
	core, logs := observer.New(zapcore.WarnLevel)
	s := NewReviewService(st, st, ReviewConfig{Now: (&clock{t: t0}).Now, QueryTimeout: 20 * time.Millisecond}, zap.New(core))
	user := uuid.Must(uuid.NewV4())
	st.addCard(user, t0)

	start := time.Now()
	due, total, err := s.DueCards(context.Background(), model.DueQuery{UserID: user})
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("query was not bounded by the timeout: %v", elapsed)
	}
	if err != nil || len(due) != 0 || total != 0 {
		t.Fatalf("want empty result, got %d/%d err=%v", len(due), total, err)
	}
	entries := logs.FilterMessage("due cards query failed, returning empty result").All()
	if len(entries) != 1 {
		t.Fatalf("want one WARN entry, got %d", len(entries))
	}
	if got, ok := entries[0].ContextMap()["error"].(string); !ok || !strings.Contains(got, "deadline exceeded") {
		t.Fatalf("want deadline error logged, got %v", entries[0].ContextMap()["error"])
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()
	st := newMemStore()
	clk := &clock{t: t0}
	s := newReviewSvc(t, st, clk)
	ctx := context.Background()
	user := uuid.Must(uuid.NewV4())
	c := st.addCard(user, t0)

	for _, r := range []srs.Rating{srs.Good, srs.Again, srs.Easy} {
		if _, err := s.RateCard(ctx, user, c.ID, r); err != nil {
			t.Fatalf("RateCard: %v", err)
		}
		clk.Advance(time.Hour)
	}
	hist, err := s.History(ctx, user, c.ID)
	if err != nil || len(hist) != 3 {
		t.Fatalf("history: %d err=%v", len(hist), err)
	}
	if hist[0].Rating != int(srs.Easy) || hist[2].Rating != int(srs.Good) {
		t.Fatalf("want newest first, got %+v", hist)
	}
	if _, err := s.History(ctx, uuid.Must(uuid.NewV4()), c.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("foreign card: %v", err)
	}
}
