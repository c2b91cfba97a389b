package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/and161185/flashrecall/internal/repository"
)

// memStore keeps cards and the review log in memory. Errors can be injected per call.
type memStore struct {
	mu      sync.Mutex
	owner   map[uuid.UUID]uuid.UUID // deck -> user
	cards   map[uuid.UUID]model.Flashcard
	reviews []model.CardReview
	seq     int64

	getCalls, latestCalls, insertCalls int

	getErr, latestErr, insertErr, listErr, batchErr error

	// blockList makes ListWithLatestReview wait for its context to end.
	blockList bool
}

var (
	_ repository.FlashcardRepository = (*memStore)(nil)
	_ repository.ReviewRepository    = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{owner: map[uuid.UUID]uuid.UUID{}, cards: map[uuid.UUID]model.Flashcard{}}
}

func (m *memStore) addCard(user uuid.UUID, created time.Time) model.Flashcard {
	m.mu.Lock()
	defer m.mu.Unlock()
	deck := uuid.Must(uuid.NewV4())
	m.owner[deck] = user
	c := model.Flashcard{ID: uuid.Must(uuid.NewV4()), DeckID: deck, Front: "q", Back: "a", CreatedAt: created, UpdatedAt: created}
	m.cards[c.ID] = c
	return c
}

func (m *memStore) owns(user uuid.UUID, c model.Flashcard) bool { return m.owner[c.DeckID] == user }

func (m *memStore) Create(_ context.Context, c *model.Flashcard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.cards {
		if other.DeckID == c.DeckID && other.ContentHash == c.ContentHash {
			return errs.ErrAlreadyExists
		}
	}
	m.cards[c.ID] = *c
	return nil
}

func (m *memStore) CreateBatch(ctx context.Context, cards []model.Flashcard) (int, error) {
	if m.batchErr != nil {
		return 0, m.batchErr
	}
	n := 0
	for i := range cards {
		if err := m.Create(ctx, &cards[i]); err == nil {
			n++
		}
	}
	return n, nil
}

func (m *memStore) Get(_ context.Context, user, id uuid.UUID) (*model.Flashcard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	c, ok := m.cards[id]
	if !ok || !m.owns(user, c) {
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) Update(_ context.Context, user uuid.UUID, c *model.Flashcard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.cards[c.ID]
	if !ok || !m.owns(user, old) {
		return errs.ErrNotFound
	}
	m.cards[c.ID] = *c
	return nil
}

func (m *memStore) Delete(_ context.Context, user, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[id]
	if !ok || !m.owns(user, c) {
		return errs.ErrNotFound
	}
	delete(m.cards, id)
	return nil
}

func (m *memStore) ListWithLatestReview(ctx context.Context, user uuid.UUID, deck *uuid.UUID) ([]model.CardWithReview, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.blockList {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	m.mu.Lock()
	var picked []model.Flashcard
	for _, c := range m.cards {
		if m.owns(user, c) && (deck == nil || c.DeckID == *deck) {
			picked = append(picked, c)
		}
	}
	m.mu.Unlock()
	sort.Slice(picked, func(i, j int) bool { return picked[i].CreatedAt.Before(picked[j].CreatedAt) })

	out := make([]model.CardWithReview, 0, len(picked))
	for _, c := range picked {
		item := model.CardWithReview{Card: c}
		if rv, err := m.latest(user, c.ID); err == nil {
			item.Latest = rv
		}
		out = append(out, item)
	}
	return out, ctx.Err()
}

func (m *memStore) Insert(_ context.Context, rv *model.CardReview) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls++
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.seq++
	rv.ID = m.seq
	m.reviews = append(m.reviews, *rv)
	return rv.ID, nil
}

func (m *memStore) Latest(_ context.Context, user, card uuid.UUID) (*model.CardReview, error) {
	m.mu.Lock()
	m.latestCalls++
	err := m.latestErr
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return m.latest(user, card)
}

func (m *memStore) latest(user, card uuid.UUID) (*model.CardReview, error) {
	hist := m.history(user, card)
	if len(hist) == 0 {
		return nil, errs.ErrNotFound
	}
	return &hist[0], nil
}

func (m *memStore) history(user, card uuid.UUID) []model.CardReview {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.CardReview
	for _, rv := range m.reviews {
		if rv.UserID == user && rv.FlashcardID == card {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ReviewedAt.Equal(out[j].ReviewedAt) {
			return out[i].ReviewedAt.After(out[j].ReviewedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (m *memStore) ListForCard(_ context.Context, user, card uuid.UUID) ([]model.CardReview, error) {
	return m.history(user, card), nil
}

type fakeDeckRepo struct {
	decks     map[uuid.UUID]model.Deck
	createErr error
}

var _ repository.DeckRepository = (*fakeDeckRepo)(nil)

func newFakeDeckRepo() *fakeDeckRepo { return &fakeDeckRepo{decks: map[uuid.UUID]model.Deck{}} }

func (f *fakeDeckRepo) Create(_ context.Context, d *model.Deck) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.decks[d.ID] = *d
	return nil
}

func (f *fakeDeckRepo) Get(_ context.Context, user, id uuid.UUID) (*model.Deck, error) {
	d, ok := f.decks[id]
	if !ok || d.UserID != user {
		return nil, errs.ErrNotFound
	}
	return &d, nil
}

func (f *fakeDeckRepo) List(_ context.Context, user uuid.UUID) ([]model.Deck, error) {
	var out []model.Deck
	for _, d := range f.decks {
		if d.UserID == user {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }
