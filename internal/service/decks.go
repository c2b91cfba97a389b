package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/importer"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/and161185/flashrecall/internal/repository"
)

// DeckService manages decks and card content. It never touches review rows
// except through the cascade on card deletion.
type DeckService interface {
	// CreateDeck creates a named deck for the user.
	CreateDeck(ctx context.Context, userID uuid.UUID, name string) (model.Deck, error)
	// ListDecks returns the user's decks.
	ListDecks(ctx context.Context, userID uuid.UUID) ([]model.Deck, error)
	// AddFlashcard creates a card in one of the user's decks.
	AddFlashcard(ctx context.Context, userID, deckID uuid.UUID, in model.NewFlashcard) (model.Flashcard, error)
	// UpdateFlashcard replaces a card's content.
	UpdateFlashcard(ctx context.Context, userID, cardID uuid.UUID, in model.NewFlashcard) (model.Flashcard, error)
	// DeleteFlashcard removes a card and its reviews.
	DeleteFlashcard(ctx context.Context, userID, cardID uuid.UUID) error
	// ImportFlashcards adds a batch of cards, skipping content already in the deck.
	ImportFlashcards(ctx context.Context, userID, deckID uuid.UUID, in []model.NewFlashcard) (model.ImportResult, error)
}

const maxDeckName = 200

// DeckServiceImpl implements DeckService on top of the deck and flashcard
// repositories. Input is checked with validator before any write.
type DeckServiceImpl struct {
	decks    repository.DeckRepository
	cards    repository.FlashcardRepository
	validate *validator.Validate
	maxBatch int
	now      func() time.Time
	log      *zap.Logger
}

// NewDeckService constructs DeckService with batch limits.
func NewDeckService(
	decks repository.DeckRepository, cards repository.FlashcardRepository, maxBatch int, log *zap.Logger,
) *DeckServiceImpl {
	if maxBatch <= 0 {
		maxBatch = 1000
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DeckServiceImpl{
		decks:    decks,
		cards:    cards,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		maxBatch: maxBatch,
		now:      time.Now,
		log:      log,
	}
}

// CreateDeck trims the name and rejects empty or oversized names.
func (s *DeckServiceImpl) CreateDeck(ctx context.Context, userID uuid.UUID, name string) (model.Deck, error) {
	if userID == uuid.Nil {
		return model.Deck{}, errs.ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxDeckName {
		return model.Deck{}, fmt.Errorf("%w: deck name must be 1..%d characters", errs.ErrInvalidArgument, maxDeckName)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Deck{}, err
	}
	d := model.Deck{ID: id, UserID: userID, Name: name, CreatedAt: s.now().UTC()}
	if err := s.decks.Create(ctx, &d); err != nil {
		return model.Deck{}, err
	}
	return d, nil
}

// ListDecks returns the user's decks ordered by name.
func (s *DeckServiceImpl) ListDecks(ctx context.Context, userID uuid.UUID) ([]model.Deck, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrInvalidUserID
	}
	return s.decks.List(ctx, userID)
}

// AddFlashcard checks deck ownership before inserting.
func (s *DeckServiceImpl) AddFlashcard(
	ctx context.Context, userID, deckID uuid.UUID, in model.NewFlashcard,
) (model.Flashcard, error) {
	if err := s.checkIDs(userID, deckID, "deck"); err != nil {
		return model.Flashcard{}, err
	}
	in, err := s.clean(in)
	if err != nil {
		return model.Flashcard{}, err
	}
	if _, err := s.decks.Get(ctx, userID, deckID); err != nil {
		return model.Flashcard{}, err
	}
	c, err := s.newCard(deckID, in)
	if err != nil {
		return model.Flashcard{}, err
	}
	if err := s.cards.Create(ctx, &c); err != nil {
		return model.Flashcard{}, err
	}
	return c, nil
}

// UpdateFlashcard rewrites content and the content hash. Scheduling is kept.
func (s *DeckServiceImpl) UpdateFlashcard(
	ctx context.Context, userID, cardID uuid.UUID, in model.NewFlashcard,
) (model.Flashcard, error) {
	if err := s.checkIDs(userID, cardID, "flashcard"); err != nil {
		return model.Flashcard{}, err
	}
	in, err := s.clean(in)
	if err != nil {
		return model.Flashcard{}, err
	}
	c, err := s.cards.Get(ctx, userID, cardID)
	if err != nil {
		return model.Flashcard{}, err
	}
	c.Front, c.Back = in.Front, in.Back
	c.ExamRelevant, c.Difficulty = in.ExamRelevant, in.Difficulty
	c.ContentHash = importer.ContentHash(in.Front, in.Back)
	c.UpdatedAt = s.now().UTC()
	if err := s.cards.Update(ctx, userID, c); err != nil {
		return model.Flashcard{}, err
	}
	return *c, nil
}

// DeleteFlashcard removes a card owned by the user.
func (s *DeckServiceImpl) DeleteFlashcard(ctx context.Context, userID, cardID uuid.UUID) error {
	if err := s.checkIDs(userID, cardID, "flashcard"); err != nil {
		return err
	}
	return s.cards.Delete(ctx, userID, cardID)
}

// ImportFlashcards validates the whole batch before writing any of it.
func (s *DeckServiceImpl) ImportFlashcards(
	ctx context.Context, userID, deckID uuid.UUID, in []model.NewFlashcard,
) (model.ImportResult, error) {
	if err := s.checkIDs(userID, deckID, "deck"); err != nil {
		return model.ImportResult{}, err
	}
	if len(in) == 0 {
		return model.ImportResult{}, nil
	}
	if len(in) > s.maxBatch {
		return model.ImportResult{}, fmt.Errorf("%w: batch too large (%d > %d)", errs.ErrInvalidArgument, len(in), s.maxBatch)
	}

	cards := make([]model.Flashcard, 0, len(in))
	for i := range in {
		nc, err := s.clean(in[i])
		if err != nil {
			return model.ImportResult{}, fmt.Errorf("card[%d]: %w", i, err)
		}
		c, err := s.newCard(deckID, nc)
		if err != nil {
			return model.ImportResult{}, err
		}
		cards = append(cards, c)
	}

	if _, err := s.decks.Get(ctx, userID, deckID); err != nil {
		return model.ImportResult{}, err
	}
	created, err := s.cards.CreateBatch(ctx, cards)
	if err != nil {
		return model.ImportResult{}, err
	}
	res := model.ImportResult{Created: created, Skipped: len(cards) - created}
	s.log.Info("cards imported",
		zap.String("user_id", userID.String()),
		zap.String("deck_id", deckID.String()),
		zap.Int("created", res.Created),
		zap.Int("skipped", res.Skipped))
	return res, nil
}

func (s *DeckServiceImpl) checkIDs(userID, id uuid.UUID, what string) error {
	if userID == uuid.Nil {
		return errs.ErrInvalidUserID
	}
	if id == uuid.Nil {
		return fmt.Errorf("%w: empty %s id", errs.ErrInvalidArgument, what)
	}
	return nil
}

// clean trims content and validates it against NewFlashcard's tags.
func (s *DeckServiceImpl) clean(in model.NewFlashcard) (model.NewFlashcard, error) {
	in.Front = strings.TrimSpace(in.Front)
	in.Back = strings.TrimSpace(in.Back)
	in.Difficulty = model.Difficulty(strings.ToLower(string(in.Difficulty)))
	if err := s.validate.Struct(in); err != nil {
		return model.NewFlashcard{}, fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
	}
	return in, nil
}

func (s *DeckServiceImpl) newCard(deckID uuid.UUID, in model.NewFlashcard) (model.Flashcard, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return model.Flashcard{}, err
	}
	now := s.now().UTC()
	return model.Flashcard{
		ID:           id,
		DeckID:       deckID,
		Front:        in.Front,
		Back:         in.Back,
		ExamRelevant: in.ExamRelevant,
		Difficulty:   in.Difficulty,
		ContentHash:  importer.ContentHash(in.Front, in.Back),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
