//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_expiry_test
package voucher_expiry

import "context"

type Service interface {
	NotifyExpired(ctx context.Context, limit int) (int, error)
}
