// Package grpcserver exposes the flashrecall.v1.Scheduler gRPC handlers.
package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/flashrecall/api/flashrecall/v1"
	"github.com/and161185/flashrecall/internal/convert"
	"github.com/and161185/flashrecall/internal/errs"
	"github.com/and161185/flashrecall/internal/model"
	"github.com/and161185/flashrecall/internal/service"
	"github.com/and161185/flashrecall/internal/srs"
)

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedSchedulerServer
	reviews service.ReviewService
	decks   service.DeckService
	signKey []byte
}

var _ pb.SchedulerServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(reviews service.ReviewService, decks service.DeckService, signKey []byte) *Server {
	return &Server{reviews: reviews, decks: decks, signKey: signKey}
}

// toStatus maps service sentinels onto gRPC codes. op prefixes unexpected errors.
func toStatus(err error, op string) error {
	switch {
	case errors.Is(err, errs.ErrInvalidRating),
		errors.Is(err, errs.ErrInvalidUserID),
		errors.Is(err, errs.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "no auth")
	case errors.Is(err, errs.ErrStorage):
		return status.Error(codes.Unavailable, "failed to save review")
	case errors.Is(err, errs.ErrStorageRead):
		return status.Error(codes.Unavailable, "failed to load review state")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, op)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, op)
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// caller returns the user stored by AuthUnary, or verifies the token itself
// when the interceptor is not installed.
func (s *Server) caller(ctx context.Context) (uuid.UUID, error) {
	if id, ok := UserIDFromCtx(ctx); ok {
		return id, nil
	}
	id, err := s.userIDFromCtx(ctx)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "no auth")
	}
	return id, nil
}

// --- Reviews ---

// RateCard records a rating and returns the new schedule.
func (s *Server) RateCard(ctx context.Context, req *pb.RateCardRequest) (*pb.RateCardResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	cardID, err := convert.ParseID(req.GetFlashcardId(), "flashcard")
	if err != nil {
		return nil, toStatus(err, "rate card")
	}
	res, err := s.reviews.RateCard(ctx, userID, cardID, srs.Rating(req.GetRating()))
	if err != nil {
		return nil, toStatus(err, "rate card")
	}
	return convert.ToProtoRateCard(res), nil
}

// DueCards returns the prioritized study queue.
func (s *Server) DueCards(ctx context.Context, req *pb.DueCardsRequest) (*pb.DueCardsResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	deckID, err := convert.ParseOptionalID(req.GetDeckId(), "deck")
	if err != nil {
		return nil, toStatus(err, "due cards")
	}
	cards, total, err := s.reviews.DueCards(ctx, model.DueQuery{UserID: userID, DeckID: deckID, Limit: int(req.GetLimit())})
	if err != nil {
		return nil, toStatus(err, "due cards")
	}
	return &pb.DueCardsResponse{Cards: convert.ToProtoDueCards(cards), Total: int32(total)}, nil
}

// ReviewHistory returns the card's reviews, newest first.
func (s *Server) ReviewHistory(ctx context.Context, req *pb.ReviewHistoryRequest) (*pb.ReviewHistoryResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	cardID, err := convert.ParseID(req.GetFlashcardId(), "flashcard")
	if err != nil {
		return nil, toStatus(err, "review history")
	}
	hist, err := s.reviews.History(ctx, userID, cardID)
	if err != nil {
		return nil, toStatus(err, "review history")
	}
	return &pb.ReviewHistoryResponse{Reviews: convert.ToProtoReviews(hist)}, nil
}

// --- Decks ---

// CreateDeck adds a deck owned by the caller. Names are unique per user.
func (s *Server) CreateDeck(ctx context.Context, req *pb.CreateDeckRequest) (*pb.CreateDeckResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.decks.CreateDeck(ctx, userID, req.GetName())
	if err != nil {
		return nil, toStatus(err, "create deck")
	}
	return &pb.CreateDeckResponse{Deck: convert.ToProtoDeck(d)}, nil
}

// ListDecks returns the caller's decks ordered by name.
func (s *Server) ListDecks(ctx context.Context, _ *pb.ListDecksRequest) (*pb.ListDecksResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	ds, err := s.decks.ListDecks(ctx, userID)
	if err != nil {
		return nil, toStatus(err, "list decks")
	}
	return &pb.ListDecksResponse{Decks: convert.ToProtoDecks(ds)}, nil
}

// --- Cards ---

// AddFlashcard stores one card; identical content in the same deck is rejected.
func (s *Server) AddFlashcard(ctx context.Context, req *pb.AddFlashcardRequest) (*pb.AddFlashcardResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	deckID, err := convert.ParseID(req.GetDeckId(), "deck")
	if err != nil {
		return nil, toStatus(err, "add flashcard")
	}
	c, err := s.decks.AddFlashcard(ctx, userID, deckID, convert.FromProtoCardInput(req.GetCard()))
	if err != nil {
		return nil, toStatus(err, "add flashcard")
	}
	return &pb.AddFlashcardResponse{Card: convert.ToProtoFlashcard(c)}, nil
}

// UpdateFlashcard replaces card content; its review history is kept.
func (s *Server) UpdateFlashcard(ctx context.Context, req *pb.UpdateFlashcardRequest) (*pb.UpdateFlashcardResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	cardID, err := convert.ParseID(req.GetFlashcardId(), "flashcard")
	if err != nil {
		return nil, toStatus(err, "update flashcard")
	}
	c, err := s.decks.UpdateFlashcard(ctx, userID, cardID, convert.FromProtoCardInput(req.GetCard()))
	if err != nil {
		return nil, toStatus(err, "update flashcard")
	}
	return &pb.UpdateFlashcardResponse{Card: convert.ToProtoFlashcard(c)}, nil
}

// DeleteFlashcard removes a card together with its reviews.
func (s *Server) DeleteFlashcard(ctx context.Context, req *pb.DeleteFlashcardRequest) (*pb.DeleteFlashcardResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	cardID, err := convert.ParseID(req.GetFlashcardId(), "flashcard")
	if err != nil {
		return nil, toStatus(err, "delete flashcard")
	}
	if err := s.decks.DeleteFlashcard(ctx, userID, cardID); err != nil {
		return nil, toStatus(err, "delete flashcard")
	}
	return &pb.DeleteFlashcardResponse{}, nil
}

// ImportFlashcards adds a batch of cards, skipping duplicates in the deck.
func (s *Server) ImportFlashcards(ctx context.Context, req *pb.ImportFlashcardsRequest) (*pb.ImportFlashcardsResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	deckID, err := convert.ParseID(req.GetDeckId(), "deck")
	if err != nil {
		return nil, toStatus(err, "import flashcards")
	}
	res, err := s.decks.ImportFlashcards(ctx, userID, deckID, convert.FromProtoCardInputs(req.GetCards()))
	if err != nil {
		return nil, toStatus(err, "import flashcards")
	}
	return &pb.ImportFlashcardsResponse{Created: int32(res.Created), Skipped: int32(res.Skipped)}, nil
}

// --- auth ---

// userIDFromCtx: extract "authorization: Bearer <JWT>", verify HS256, return sub as UUID.
func (s *Server) userIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return uuid.Nil, errors.New("token expired or not valid yet")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("bad subject")
	}
	return id, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}
