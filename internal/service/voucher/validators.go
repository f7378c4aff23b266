package voucher

import (
	"strings"

	"recycling/internal/entities"
	"recycling/pkg/vouchercode"
)

// минимальная сумма ваучера в EGP по типу владельца
var minAmount = map[entities.HolderKind]int64{
	entities.HolderUser:  10,
	entities.HolderAgent: 1,
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isValidCode(code string) bool {
	if len(code) != vouchercode.DefaultLength {
		return false
	}
	for _, r := range code {
		if !strings.ContainsRune(vouchercode.Alphabet, r) {
			return false
		}
	}
	return true
}
