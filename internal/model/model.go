// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Difficulty is an informational level set by the card author. The scheduler never reads it.
type Difficulty string

// Known difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Deck groups flashcards and belongs to a single user.
type Deck struct {
	ID        uuid.UUID
	UserID    uuid.UUID // owner
	Name      string
	CreatedAt time.Time
}

// Flashcard is a front/back content pair. It carries no scheduling state.
type Flashcard struct {
	ID           uuid.UUID
	DeckID       uuid.UUID
	Front        string
	Back         string
	ExamRelevant bool
	Difficulty   Difficulty
	ContentHash  string // normalized content digest, unique per deck
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewFlashcard is the content of a card to be created.
type NewFlashcard struct {
	Front        string     `validate:"required"`
	Back         string     `validate:"required"`
	ExamRelevant bool
	Difficulty   Difficulty `validate:"omitempty,oneof=easy medium hard"`
}

// CardReview is one immutable rating event for a (user, flashcard) pair.
type CardReview struct {
	ID          int64 // store-assigned insertion sequence, tie-break for equal ReviewedAt
	UserID      uuid.UUID
	FlashcardID uuid.UUID
	Rating      int
	EaseFactor  int // real ease factor x100, in [130, 400]
	Interval    int // days, >= 0
	NextReview  time.Time
	ReviewedAt  time.Time
}

// CardWithReview pairs a flashcard with the user's latest review (nil for a new card).
type CardWithReview struct {
	Card   Flashcard
	Latest *CardReview
}

// DueCard is a flashcard selected for study together with its ranking data.
type DueCard struct {
	Card        Flashcard
	Latest      *CardReview // nil for a new card
	Priority    int
	OverdueDays int
}

// DueQuery scopes a due-card selection.
type DueQuery struct {
	UserID uuid.UUID
	DeckID *uuid.UUID // nil: all of the user's decks
	Limit  int        // 0: service default
}

// ReviewResult is returned to the caller after a rating is recorded.
type ReviewResult struct {
	ReviewID   int64
	Interval   int
	EaseFactor float64
	NextReview time.Time
}

// ImportResult reports the outcome of a batch card import.
type ImportResult struct {
	Created int
	Skipped int // duplicates already present in the deck
}
