package ledger

import "time"

type ActivityDB struct {
	ID         int64
	HolderKind string
	HolderID   int64
	Title      string
	Points     int64
	Type       string
	CreatedAt  time.Time
}

type BalanceDB struct {
	ID      int64
	Email   string
	Points  int64
	Rewards int64
}
