package store

import "recycling/internal/entities"

func ToBranchDomain(b *BranchDB) *entities.Branch {
	if b == nil {
		return nil
	}
	return &entities.Branch{
		ID:        b.ID,
		StoreID:   b.StoreID,
		StoreName: b.StoreName,
		Name:      b.Name,
		Address:   b.Address,
	}
}

// ToStoresDomain группирует отсортированные по магазину филиалы в магазины.
func ToStoresDomain(branchModels []BranchDB) []entities.Store {
	stores := make([]entities.Store, 0, 4)
	for i := range branchModels {
		b := &branchModels[i]
		if len(stores) == 0 || stores[len(stores)-1].ID != b.StoreID {
			stores = append(stores, entities.Store{ID: b.StoreID, Name: b.StoreName})
		}
		last := &stores[len(stores)-1]
		last.Branches = append(last.Branches, *ToBranchDomain(b))
	}
	return stores
}
