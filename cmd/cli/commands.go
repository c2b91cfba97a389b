package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	u "github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	pb "github.com/and161185/flashrecall/api/flashrecall/v1"
	"github.com/and161185/flashrecall/internal/convert"
	"github.com/and161185/flashrecall/internal/importer"
	"github.com/and161185/flashrecall/internal/srs"
)

// env is what every remote command needs.
type env struct {
	client pb.SchedulerClient
	out    io.Writer
	log    *zap.Logger
}

type command func(ctx context.Context, e *env, args []string) error

var commands = map[string]command{
	"decks":     runDecks,
	"deck-add":  runDeckAdd,
	"card-add":  runCardAdd,
	"card-edit": runCardEdit,
	"card-rm":   runCardRm,
	"due":       runDue,
	"rate":      runRate,
	"history":   runHistory,
	"import":    runImport,
}

func newFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// ------- token -------

// mintToken signs an HS256 token for sub, the same shape the server verifies.
func mintToken(key []byte, sub string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if len(key) == 0 {
		return "", time.Time{}, errors.New("need --key (or FRC_JWT_KEY)")
	}
	if _, err := u.FromString(sub); err != nil {
		return "", time.Time{}, fmt.Errorf("subject must be a uuid: %w", err)
	}
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, exp, nil
}

func runToken(out io.Writer, args []string, now time.Time) error {
	fs := newFlags("token")
	key := fs.String("key", os.Getenv("FRC_JWT_KEY"), "server auth.jwt-key")
	sub := fs.String("sub", "", "user id (uuid); a new one is generated when empty")
	ttl := fs.Duration("ttl", 30*24*time.Hour, "token lifetime")
	save := fs.Bool("save", false, "store the token for later commands")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sub == "" {
		*sub = u.Must(u.NewV4()).String()
	}
	tok, exp, err := mintToken([]byte(*key), *sub, now, *ttl)
	if err != nil {
		return err
	}
	if *save {
		if err := saveToken(tok, exp); err != nil {
			return err
		}
	}
	return printJSON(out, map[string]any{"user_id": *sub, "token": tok, "expires_at": exp.UTC()})
}

// ------- decks and cards -------

func runDecks(ctx context.Context, e *env, _ []string) error {
	resp, err := e.client.ListDecks(ctx, &pb.ListDecksRequest{})
	if err != nil {
		return err
	}
	return printProto(e.out, resp)
}

func runDeckAdd(ctx context.Context, e *env, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return errors.New("need a deck name")
	}
	resp, err := e.client.CreateDeck(ctx, &pb.CreateDeckRequest{Name: name})
	if err != nil {
		return err
	}
	return printProto(e.out, resp.GetDeck())
}

func cardFlags(fs *pflag.FlagSet) func() *pb.CardInput {
	front := fs.String("front", "", "question side")
	back := fs.String("back", "", "answer side")
	exam := fs.Bool("exam", false, "mark as exam relevant")
	difficulty := fs.String("difficulty", "", "easy|medium|hard")
	return func() *pb.CardInput {
		return &pb.CardInput{Front: *front, Back: *back, ExamRelevant: *exam, Difficulty: *difficulty}
	}
}

func runCardAdd(ctx context.Context, e *env, args []string) error {
	fs := newFlags("card-add")
	deck := fs.String("deck", "", "deck id")
	card := cardFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *deck == "" {
		return errors.New("need --deck")
	}
	resp, err := e.client.AddFlashcard(ctx, &pb.AddFlashcardRequest{DeckId: *deck, Card: card()})
	if err != nil {
		return err
	}
	return printProto(e.out, resp.GetCard())
}

func runCardEdit(ctx context.Context, e *env, args []string) error {
	fs := newFlags("card-edit")
	id := fs.String("id", "", "flashcard id")
	card := cardFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("need --id")
	}
	resp, err := e.client.UpdateFlashcard(ctx, &pb.UpdateFlashcardRequest{FlashcardId: *id, Card: card()})
	if err != nil {
		return err
	}
	return printProto(e.out, resp.GetCard())
}

func runCardRm(ctx context.Context, e *env, args []string) error {
	fs := newFlags("card-rm")
	id := fs.String("id", "", "flashcard id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("need --id")
	}
	if _, err := e.client.DeleteFlashcard(ctx, &pb.DeleteFlashcardRequest{FlashcardId: *id}); err != nil {
		return err
	}
	_, err := fmt.Fprintln(e.out, "ok")
	return err
}

// ------- study -------

func runDue(ctx context.Context, e *env, args []string) error {
	fs := newFlags("due")
	deck := fs.String("deck", "", "restrict to one deck")
	limit := fs.Int("limit", 0, "max cards (0: server default)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := e.client.DueCards(ctx, &pb.DueCardsRequest{DeckId: *deck, Limit: int32(*limit)})
	if err != nil {
		return err
	}
	type row struct {
		ID          string `json:"id"`
		Front       string `json:"front"`
		Priority    string `json:"priority"`
		OverdueDays int    `json:"overdue_days,omitempty"`
	}
	rows := make([]row, 0, len(resp.GetCards()))
	for _, c := range resp.GetCards() {
		rows = append(rows, row{
			ID:          c.GetCard().GetId(),
			Front:       c.GetCard().GetFront(),
			Priority:    srs.Priority(c.GetPriority()).String(),
			OverdueDays: int(c.GetOverdueDays()),
		})
	}
	return printJSON(e.out, map[string]any{"total": resp.GetTotal(), "cards": rows})
}

func runRate(ctx context.Context, e *env, args []string) error {
	fs := newFlags("rate")
	id := fs.String("id", "", "flashcard id")
	ratingArg := fs.String("rating", "", "again|hard|good|easy or 1..4")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("need --id")
	}
	rating, err := srs.ParseRating(*ratingArg)
	if err != nil {
		return err
	}
	resp, err := e.client.RateCard(ctx, &pb.RateCardRequest{FlashcardId: *id, Rating: int32(rating)})
	if err != nil {
		return err
	}
	return printProto(e.out, resp)
}

func runHistory(ctx context.Context, e *env, args []string) error {
	fs := newFlags("history")
	id := fs.String("id", "", "flashcard id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("need --id")
	}
	resp, err := e.client.ReviewHistory(ctx, &pb.ReviewHistoryRequest{FlashcardId: *id})
	if err != nil {
		return err
	}
	return printProto(e.out, resp)
}

// ------- import -------

// runImport parses markdown locally (or from a git checkout) and uploads it in batches.
func runImport(ctx context.Context, e *env, args []string) error {
	fs := newFlags("import")
	deck := fs.String("deck", "", "target deck id")
	batch := fs.Int("batch", 500, "cards per request")
	cache := fs.String("cache", filepath.Join(cfgDir(), "repos"), "git checkout cache")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *deck == "" || fs.NArg() != 1 {
		return errors.New("need --deck and exactly one source")
	}
	if *batch < 1 {
		return errors.New("--batch must be positive")
	}

	cards, err := importer.NewLoader(*cache, e.log).Load(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	var created, skipped int
	for start := 0; start < len(cards); start += *batch {
		end := min(start+*batch, len(cards))
		in := make([]*pb.CardInput, 0, end-start)
		for _, c := range cards[start:end] {
			in = append(in, convert.ToProtoCardInput(c))
		}
		resp, err := e.client.ImportFlashcards(ctx, &pb.ImportFlashcardsRequest{DeckId: *deck, Cards: in})
		if err != nil {
			return fmt.Errorf("batch at card %d: %w", start, err)
		}
		created += int(resp.GetCreated())
		skipped += int(resp.GetSkipped())
		e.log.Info("batch imported", zap.Int("from", start), zap.Int32("created", resp.GetCreated()))
	}
	return printJSON(e.out, map[string]any{"parsed": len(cards), "created": created, "skipped": skipped})
}
