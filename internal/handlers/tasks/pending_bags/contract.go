//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_bags_test
package pending_bags

import "context"

type Service interface {
	AssignPendingBags(ctx context.Context, limit int) (int, error)
}
