package srs

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/and161185/flashrecall/internal/model"
)

// Priority orders due cards within a session; higher is studied first.
type Priority int

const (
	PriorityDueToday        Priority = 0
	PriorityNew             Priority = 1
	PriorityOverdue         Priority = 2 // 1 to 7 days past due
	PrioritySeverelyOverdue Priority = 3 // more than 7 days past due
)

func (p Priority) String() string {
	switch p {
	case PriorityDueToday:
		return "due-today"
	case PriorityNew:
		return "new"
	case PriorityOverdue:
		return "overdue"
	case PrioritySeverelyOverdue:
		return "severely-overdue"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

const severeOverdueDays = 7

const day = 24 * time.Hour

// Classify reports whether a card with the given latest review is due at now,
// and if so its priority and whole days overdue. A nil review is a new card.
//
// Overdue days count completed 24h periods since the next review, floored, and
// the bands apply to that count: 0 is due today, 1 to 7 is overdue, 8 and up
// is severely overdue. A card 7.5 days late therefore counts as 7 days and is
// PriorityOverdue, not PrioritySeverelyOverdue.
func Classify(latest *model.CardReview, now time.Time) (due bool, p Priority, overdueDays int) {
	if latest == nil {
		return true, PriorityNew, 0
	}
	if now.Before(latest.NextReview) {
		return false, 0, 0
	}
	overdueDays = int(now.Sub(latest.NextReview) / day)
	switch {
	case overdueDays > severeOverdueDays:
		p = PrioritySeverelyOverdue
	case overdueDays >= 1:
		p = PriorityOverdue
	default:
		p = PriorityDueToday
	}
	return true, p, overdueDays
}

// SelectDue filters cards to those due at now and ranks them: priority first,
// then the longest-waiting card (earliest next review, or creation time for new
// cards), then card ID so the order is stable.
func SelectDue(cards []model.CardWithReview, now time.Time) []model.DueCard {
	out := make([]model.DueCard, 0, len(cards))
	for _, c := range cards {
		due, p, days := Classify(c.Latest, now)
		if !due {
			continue
		}
		out = append(out, model.DueCard{
			Card:        c.Card,
			Latest:      c.Latest,
			Priority:    int(p),
			OverdueDays: days,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if ta, tb := waitingSince(a), waitingSince(b); !ta.Equal(tb) {
			return ta.Before(tb)
		}
		return bytes.Compare(a.Card.ID[:], b.Card.ID[:]) < 0
	})
	return out
}

func waitingSince(c model.DueCard) time.Time {
	if c.Latest == nil {
		return c.Card.CreatedAt
	}
	return c.Latest.NextReview
}
