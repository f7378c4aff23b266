package entities

import "time"

type Voucher struct {
	ID           int64
	Holder       Holder
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

// IsActive не использован и не истёк на момент now.
func (v *Voucher) IsActive(now time.Time) bool {
	return !v.IsUsed && v.ExpiresAt.After(now)
}

// VoucherDescriptor то, что зашивается в QR-код.
type VoucherDescriptor struct {
	Code       string    `json:"code"`
	Amount     int64     `json:"amount"`
	HolderType string    `json:"holder_type"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type VoucherUsage struct {
	ID         int64
	VoucherID  int64
	Code       string
	Amount     int64
	BranchID   int64
	BranchName string
	StoreName  string
	UsedAt     time.Time
}

// VoucherRedemption результат погашения ваучера в филиале.
type VoucherRedemption struct {
	Voucher Voucher
	Branch  Branch
}

// VoucherIssue результат выпуска: ваучер и остаток баланса.
type VoucherIssue struct {
	Voucher Voucher
	Balance Balance
}
