package rating

import "time"

type RatingDB struct {
	ID        int64
	BagID     int64
	AgentID   int64
	UserID    int64
	Stars     int
	Comment   string
	CreatedAt time.Time
}
