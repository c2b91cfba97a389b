// Package importer turns Markdown card files from local directories or git
// repositories into flashcards ready for a batch import.
//
// A card starts with a "Q:" line and takes its answer from an "A:" line. Both
// may continue over several lines. An optional "C:" block adds context that is
// appended to the answer, and an optional "D:" line sets the difficulty. Cards
// are separated by "---" or by the next "Q:".
package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/and161185/flashrecall/internal/model"
)

type field int

const (
	none field = iota
	question
	answer
	note
)

var prefixes = map[string]field{"Q:": question, "A:": answer, "C:": note}

type cardBuilder struct {
	parts      [4][]string
	difficulty model.Difficulty
}

func (b *cardBuilder) text(f field) string {
	return strings.TrimSpace(strings.Join(b.parts[f], "\n"))
}

func (b *cardBuilder) card() (model.NewFlashcard, bool) {
	front, back := b.text(question), b.text(answer)
	if front == "" || back == "" {
		return model.NewFlashcard{}, false
	}
	if ctx := b.text(note); ctx != "" {
		back += "\n\n" + ctx
	}
	return model.NewFlashcard{Front: front, Back: back, Difficulty: b.difficulty}, true
}

// Parse extracts cards from Markdown. Blocks without both a question and an
// answer are dropped.
func Parse(r io.Reader) ([]model.NewFlashcard, error) {
	var (
		out     []model.NewFlashcard
		cur     cardBuilder
		current = none
	)
	flush := func() {
		if c, ok := cur.card(); ok {
			out = append(out, c)
		}
		cur, current = cardBuilder{}, none
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		if rest, ok := strings.CutPrefix(line, "D:"); ok && current != none {
			cur.difficulty = model.Difficulty(strings.ToLower(strings.TrimSpace(rest)))
			continue
		}
		if f, rest, ok := cutField(line); ok {
			if f == question && current != none {
				flush()
			}
			current = f
			cur.parts[f] = append(cur.parts[f], strings.TrimPrefix(rest, " "))
			continue
		}
		if current != none {
			cur.parts[current] = append(cur.parts[current], line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

func cutField(line string) (field, string, bool) {
	for p, f := range prefixes {
		if rest, ok := strings.CutPrefix(line, p); ok {
			return f, rest, true
		}
	}
	return none, "", false
}

// ParseFile parses a single Markdown file.
func ParseFile(path string) ([]model.NewFlashcard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cards, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cards, nil
}
