package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a single user's score for an advertisement. (AdvertisementID, UserID) is unique.
type Rating struct {
	ID              uuid.UUID
	AdvertisementID uuid.UUID
	UserID          uuid.UUID
	Value           int
	CreatedAt       time.Time
}

// ValidateRatingValue checks the 1..5 range.
func ValidateRatingValue(v int) error {
	if v < MinRating || v > MaxRating {
		return NewValidationError("rating", fmt.Sprintf("must be between %d and %d", MinRating, MaxRating))
	}
	return nil
}

// AdStats are the read-time aggregates of one advertisement.
type AdStats struct {
	CommentsCount int
	RatingCount   int
	RatingSum     int
}

// AverageRating is nil when there are no ratings.
func (s AdStats) AverageRating() *float64 {
	if s.RatingCount == 0 {
		return nil
	}
	avg := float64(s.RatingSum) / float64(s.RatingCount)
	return &avg
}

// StatsFromValues folds raw rating values into AdStats.
func StatsFromValues(commentsCount int, ratings []int) AdStats {
	s := AdStats{CommentsCount: commentsCount, RatingCount: len(ratings)}
	for _, r := range ratings {
		s.RatingSum += r
	}
	return s
}
