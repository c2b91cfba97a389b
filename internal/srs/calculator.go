package srs

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

// Params are the tunable coefficients of the calculator.
type Params struct {
	AgainEaseDelta    float64 `validate:"lte=0,gte=-1"`
	HardEaseDelta     float64 `validate:"lte=0,gte=-1"`
	EasyEaseDelta     float64 `validate:"gte=0,lte=1"`
	HardMultiplier    float64 `validate:"gte=1,lte=3"`
	EasyBonus         float64 `validate:"gte=1,lte=3"`
	LapseInterval     int     `validate:"gte=1,lte=2"`
	FirstEasyInterval int     `validate:"gte=1,lte=30"`
	MaximumInterval   int     `validate:"gte=1"`
}

// DefaultParams returns the default coefficient set.
func DefaultParams() Params {
	return Params{
		AgainEaseDelta:    -0.20,
		HardEaseDelta:     -0.15,
		EasyEaseDelta:     0.15,
		HardMultiplier:    1.2,
		EasyBonus:         1.3,
		LapseInterval:     1,
		FirstEasyInterval: 3,
		MaximumInterval:   36500,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every coefficient against its allowed range.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("scheduler params: %w", err)
	}
	return nil
}

// Next is the scheduling outcome of a single rating.
type Next struct {
	Interval   int     // days until the next review
	EaseFactor float64 // in [MinEaseFactor, MaxEaseFactor]
}

// CalculateNextReview applies DefaultParams.
func CalculateNextReview(rating Rating, previousInterval int, previousEaseFactor float64) (Next, error) {
	return DefaultParams().Next(rating, previousInterval, previousEaseFactor)
}

// Next computes the interval and ease factor that follow a rating.
// previousInterval is 0 for a card that has never been reviewed.
// The adjusted ease factor is clamped before it is used for the interval.
func (p Params) Next(rating Rating, previousInterval int, previousEaseFactor float64) (Next, error) {
	if err := ValidateRating(rating); err != nil {
		return Next{}, err
	}
	prev := min(max(previousInterval, 0), p.MaximumInterval)
	ease := ClampEaseFactor(previousEaseFactor)

	switch rating {
	case Again:
		ease += p.AgainEaseDelta
	case Hard:
		ease += p.HardEaseDelta
	case Easy:
		ease += p.EasyEaseDelta
	}
	ease = ClampEaseFactor(ease)

	var interval int
	switch rating {
	case Again:
		interval = p.LapseInterval
	case Hard:
		interval = grow(prev, p.HardMultiplier, prev+1)
	case Good:
		interval = p.goodInterval(prev, ease)
	case Easy:
		if prev == 0 {
			interval = p.FirstEasyInterval
		} else {
			interval = grow(prev, ease*p.EasyBonus, p.goodInterval(prev, ease)+1)
		}
	}

	interval = min(max(interval, 1), p.MaximumInterval)
	return Next{Interval: interval, EaseFactor: ease}, nil
}

func (p Params) goodInterval(prev int, ease float64) int {
	if prev == 0 {
		return 1
	}
	return grow(prev, ease, prev+1)
}

// grow scales prev by factor, never returning less than floor.
func grow(prev int, factor float64, floor int) int {
	return max(int(math.Round(float64(prev)*factor)), floor)
}

// NextReviewDate adds interval calendar days to now.
func NextReviewDate(now time.Time, interval int) time.Time {
	return now.AddDate(0, 0, interval)
}
