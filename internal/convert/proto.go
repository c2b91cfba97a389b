// Package convert maps domain models to flashrecall.v1 protobuf messages and back.
package convert

import (
	"fmt"
	"strings"
	"time"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/flashrecall/api/flashrecall/v1"
	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/and161185/flashrecall/internal/srs"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// FromProtoTime returns the zero time for an unset timestamp.
func FromProtoTime(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

// --- ids ---

// ParseID parses a required identifier; what names it in the error.
func ParseID(s, what string) (u.UUID, error) {
	id, err := u.FromString(strings.TrimSpace(s))
	if err != nil || id == u.Nil {
		return u.Nil, fmt.Errorf("%w: bad %s id %q", errs.ErrInvalidArgument, what, s)
	}
	return id, nil
}

// ParseOptionalID returns nil for an empty string.
func ParseOptionalID(s, what string) (*u.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := ParseID(s, what)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// --- decks and cards ---

// ToProtoDeck converts a domain deck. The owner is implied by the caller's token.
func ToProtoDeck(d model.Deck) *pb.Deck {
	return &pb.Deck{Id: d.ID.String(), Name: d.Name, CreatedAt: ts(d.CreatedAt)}
}

func ToProtoDecks(ds []model.Deck) []*pb.Deck {
	out := make([]*pb.Deck, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToProtoDeck(d))
	}
	return out
}

// ToProtoFlashcard converts a domain card. The content hash stays server side.
func ToProtoFlashcard(c model.Flashcard) *pb.Flashcard {
	return &pb.Flashcard{
		Id:           c.ID.String(),
		DeckId:       c.DeckID.String(),
		Front:        c.Front,
		Back:         c.Back,
		ExamRelevant: c.ExamRelevant,
		Difficulty:   string(c.Difficulty),
		CreatedAt:    ts(c.CreatedAt),
		UpdatedAt:    ts(c.UpdatedAt),
	}
}

// FromProtoCardInput converts editable card content. A nil input yields an
// empty card, which validation rejects.
func FromProtoCardInput(in *pb.CardInput) model.NewFlashcard {
	return model.NewFlashcard{
		Front:        in.GetFront(),
		Back:         in.GetBack(),
		ExamRelevant: in.GetExamRelevant(),
		Difficulty:   model.Difficulty(in.GetDifficulty()),
	}
}

func FromProtoCardInputs(in []*pb.CardInput) []model.NewFlashcard {
	out := make([]model.NewFlashcard, 0, len(in))
	for _, c := range in {
		out = append(out, FromProtoCardInput(c))
	}
	return out
}

// ToProtoCardInput is the inverse of FromProtoCardInput, used by clients.
func ToProtoCardInput(in model.NewFlashcard) *pb.CardInput {
	return &pb.CardInput{
		Front:        in.Front,
		Back:         in.Back,
		ExamRelevant: in.ExamRelevant,
		Difficulty:   string(in.Difficulty),
	}
}

// --- reviews ---

// ToProtoReview converts a stored review; the ease factor leaves fixed point.
func ToProtoReview(r model.CardReview) *pb.Review {
	return &pb.Review{
		Id:           r.ID,
		Rating:       int32(r.Rating),
		EaseFactor:   srs.EaseFromStored(r.EaseFactor),
		IntervalDays: int32(r.Interval),
		NextReview:   ts(r.NextReview),
		ReviewedAt:   ts(r.ReviewedAt),
	}
}

func ToProtoReviews(rs []model.CardReview) []*pb.Review {
	out := make([]*pb.Review, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToProtoReview(r))
	}
	return out
}

// ToProtoDueCards keeps the order of cs.
func ToProtoDueCards(cs []model.DueCard) []*pb.DueCard {
	out := make([]*pb.DueCard, 0, len(cs))
	for _, c := range cs {
		dc := &pb.DueCard{
			Card:        ToProtoFlashcard(c.Card),
			Priority:    int32(c.Priority),
			OverdueDays: int32(c.OverdueDays),
		}
		if c.Latest != nil {
			dc.Latest = ToProtoReview(*c.Latest)
		}
		out = append(out, dc)
	}
	return out
}

// ToProtoRateCard converts the outcome of a recorded rating.
func ToProtoRateCard(r model.ReviewResult) *pb.RateCardResponse {
	return &pb.RateCardResponse{
		ReviewId:     r.ReviewID,
		IntervalDays: int32(r.Interval),
		EaseFactor:   r.EaseFactor,
		NextReview:   ts(r.NextReview),
	}
}
