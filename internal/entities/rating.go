package entities

import "time"

type Rating struct {
	ID        int64
	BagID     int64
	AgentID   int64
	UserID    int64
	Stars     int
	Comment   string
	CreatedAt time.Time
}

// RatingResult оценка и пересчитанный средний рейтинг агента.
type RatingResult struct {
	Rating        Rating
	Created       bool
	AverageRating float64
}
