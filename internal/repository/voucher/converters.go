package voucher

import "recycling/internal/entities"

func ToDomain(v *VoucherDB) *entities.Voucher {
	if v == nil {
		return nil
	}
	return &entities.Voucher{
		ID: v.ID,
		Holder: entities.Holder{
			Kind: entities.HolderKind(v.HolderKind),
			ID:   v.HolderID,
		},
		HolderEmail:  v.HolderEmail,
		Code:         v.Code,
		Amount:       v.Amount,
		IsUsed:       v.IsUsed,
		UsedAt:       v.UsedAt,
		UsedBranchID: v.UsedBranchID,
		QRPayload:    v.QRPayload,
		ExpiresAt:    v.ExpiresAt,
		CreatedAt:    v.CreatedAt,
	}
}

func ToDomainList(voucherModels []VoucherDB) []entities.Voucher {
	vouchers := make([]entities.Voucher, 0, len(voucherModels))
	for i := range voucherModels {
		vouchers = append(vouchers, *ToDomain(&voucherModels[i]))
	}
	return vouchers
}

func ToUsageDomain(u *VoucherUsageDB) *entities.VoucherUsage {
	if u == nil {
		return nil
	}
	return &entities.VoucherUsage{
		ID:         u.ID,
		VoucherID:  u.VoucherID,
		Code:       u.Code,
		Amount:     u.Amount,
		BranchID:   u.BranchID,
		BranchName: u.BranchName,
		StoreName:  u.StoreName,
		UsedAt:     u.UsedAt,
	}
}
