package voucher

import "time"

type VoucherDB struct {
	ID           int64
	HolderKind   string
	HolderID     int64
	HolderEmail  string
	Code         string
	Amount       int64
	IsUsed       bool
	UsedAt       *time.Time
	UsedBranchID *int64
	QRPayload    string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

type VoucherUsageDB struct {
	ID         int64
	VoucherID  int64
	Code       string
	Amount     int64
	BranchID   int64
	BranchName string
	StoreName  string
	UsedAt     time.Time
}
