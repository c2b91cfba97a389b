// Package service contains the application services: review scheduling and deck management.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/and161185/flashrecall/internal/repository"
	"github.com/and161185/flashrecall/internal/srs"
)

// ReviewService records ratings and selects cards due for study.
type ReviewService interface {
	// RateCard appends a review for the card and returns the new schedule.
	RateCard(ctx context.Context, userID, cardID uuid.UUID, rating srs.Rating) (model.ReviewResult, error)
	// DueCards returns up to q.Limit due cards in priority order and the total number due.
	DueCards(ctx context.Context, q model.DueQuery) ([]model.DueCard, int, error)
	// History returns every review of the card by the user, newest first.
	History(ctx context.Context, userID, cardID uuid.UUID) ([]model.CardReview, error)
}

// ReviewConfig tunes ReviewServiceImpl. Zero values fall back to defaults.
type ReviewConfig struct {
	Params       srs.Params
	DefaultLimit int
	MaxLimit     int
	QueryTimeout time.Duration
	Now          func() time.Time
}

const (
	defaultDueLimit     = 50
	defaultMaxDueLimit  = 500
	defaultQueryTimeout = 3 * time.Second
)

// ReviewServiceImpl implements ReviewService. It appends reviews computed by
// srs.Params and ranks due cards with srs.SelectDue. It is safe for concurrent use.
type ReviewServiceImpl struct {
	cards   repository.FlashcardRepository
	reviews repository.ReviewRepository
	params  srs.Params
	now     func() time.Time
	log     *zap.Logger

	defaultLimit int
	maxLimit     int
	queryTimeout time.Duration
}

// NewReviewService constructs ReviewService.
func NewReviewService(
	cards repository.FlashcardRepository, reviews repository.ReviewRepository, cfg ReviewConfig, log *zap.Logger,
) *ReviewServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Params == (srs.Params{}) {
		cfg.Params = srs.DefaultParams()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = defaultDueLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = defaultMaxDueLimit
	}
	cfg.DefaultLimit = min(cfg.DefaultLimit, cfg.MaxLimit)
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = defaultQueryTimeout
	}
	return &ReviewServiceImpl{
		cards:        cards,
		reviews:      reviews,
		params:       cfg.Params,
		now:          cfg.Now,
		log:          log,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		queryTimeout: cfg.QueryTimeout,
	}
}

// RateCard validates input, reads the latest review, computes the next
// schedule and appends it. Rows are never updated.
func (s *ReviewServiceImpl) RateCard(
	ctx context.Context, userID, cardID uuid.UUID, rating srs.Rating,
) (model.ReviewResult, error) {
	if userID == uuid.Nil {
		return model.ReviewResult{}, errs.ErrInvalidUserID
	}
	if cardID == uuid.Nil {
		return model.ReviewResult{}, fmt.Errorf("%w: empty flashcard id", errs.ErrInvalidArgument)
	}
	if err := srs.ValidateRating(rating); err != nil {
		return model.ReviewResult{}, err
	}

	if _, err := s.cards.Get(ctx, userID, cardID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.ReviewResult{}, fmt.Errorf("flashcard %s: %w", cardID, errs.ErrNotFound)
		}
		return model.ReviewResult{}, fmt.Errorf("%w: load flashcard: %w", errs.ErrStorageRead, err)
	}

	prevInterval, prevEase := 0, srs.DefaultEaseFactor
	latest, err := s.reviews.Latest(ctx, userID, cardID)
	switch {
	case err == nil:
		prevInterval, prevEase = latest.Interval, srs.EaseFromStored(latest.EaseFactor)
	case errors.Is(err, errs.ErrNotFound):
	default:
		return model.ReviewResult{}, fmt.Errorf("%w: load latest review: %w", errs.ErrStorageRead, err)
	}

	next, err := s.params.Next(rating, prevInterval, prevEase)
	if err != nil {
		return model.ReviewResult{}, err
	}

	now := s.now().UTC()
	rv := &model.CardReview{
		UserID:      userID,
		FlashcardID: cardID,
		Rating:      int(rating),
		EaseFactor:  srs.EaseToStored(next.EaseFactor),
		Interval:    next.Interval,
		NextReview:  srs.NextReviewDate(now, next.Interval),
		ReviewedAt:  now,
	}
	id, err := s.reviews.Insert(ctx, rv)
	if err != nil {
		s.log.Error("save review failed",
			zap.String("user_id", userID.String()),
			zap.String("flashcard_id", cardID.String()),
			zap.Error(err))
		return model.ReviewResult{}, fmt.Errorf("%w: save review: %w", errs.ErrStorage, err)
	}

	s.log.Debug("review recorded",
		zap.String("user_id", userID.String()),
		zap.String("flashcard_id", cardID.String()),
		zap.Stringer("rating", rating),
		zap.Int("interval", rv.Interval),
		zap.Int("ease", rv.EaseFactor))

	return model.ReviewResult{
		ReviewID:   id,
		Interval:   rv.Interval,
		EaseFactor: srs.EaseFromStored(rv.EaseFactor),
		NextReview: rv.NextReview,
	}, nil
}

// DueCards is a pure read. Storage failures never surface: see dueOrEmpty.
func (s *ReviewServiceImpl) DueCards(ctx context.Context, q model.DueQuery) ([]model.DueCard, int, error) {
	if q.UserID == uuid.Nil {
		return nil, 0, errs.ErrInvalidUserID
	}
	if q.Limit < 0 {
		return nil, 0, fmt.Errorf("%w: negative limit", errs.ErrInvalidArgument)
	}
	limit := q.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	limit = min(limit, s.maxLimit)

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	due := srs.SelectDue(s.dueOrEmpty(qctx, q), s.now())
	total := len(due)
	if len(due) > limit {
		due = due[:limit]
	}
	return due, total, nil
}

// dueOrEmpty is the only place where a read failure degrades to "nothing due".
func (s *ReviewServiceImpl) dueOrEmpty(ctx context.Context, q model.DueQuery) []model.CardWithReview {
	cards, err := s.cards.ListWithLatestReview(ctx, q.UserID, q.DeckID)
	if err != nil {
		fields := []zap.Field{zap.String("user_id", q.UserID.String()), zap.Error(err)}
		if q.DeckID != nil {
			fields = append(fields, zap.String("deck_id", q.DeckID.String()))
		}
		s.log.Warn("due cards query failed, returning empty result", fields...)
		return nil
	}
	return cards
}

// History returns the append-only review log of a card.
func (s *ReviewServiceImpl) History(ctx context.Context, userID, cardID uuid.UUID) ([]model.CardReview, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrInvalidUserID
	}
	if cardID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty flashcard id", errs.ErrInvalidArgument)
	}
	if _, err := s.cards.Get(ctx, userID, cardID); err != nil {
		return nil, err
	}
	return s.reviews.ListForCard(ctx, userID, cardID)
}
