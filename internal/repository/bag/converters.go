package bag

import "recycling/internal/entities"

func ToDomain(b *BagDB, items []BagItemDB) *entities.Bag {
	if b == nil {
		return nil
	}
	return &entities.Bag{
		ID:        b.ID,
		UserID:    b.UserID,
		Status:    entities.BagStatus(b.Status),
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Items:     ToItemsDomain(items),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func ToItemsDomain(items []BagItemDB) []entities.BagItem {
	result := make([]entities.BagItem, 0, len(items))
	for _, item := range items {
		result = append(result, entities.BagItem{
			ID:         item.ID,
			BagID:      item.BagID,
			ItemTypeID: item.ItemTypeID,
			ItemType:   item.ItemType,
			Quantity:   item.Quantity,
			Points:     item.Points,
			CO2:        item.CO2,
		})
	}
	return result
}

func ToItemTypeDomain(t ItemTypeDB) entities.ItemType {
	return entities.ItemType{
		ID:            t.ID,
		Name:          t.Name,
		PointsPerUnit: t.PointsPerUnit,
		CO2PerUnit:    t.CO2PerUnit,
	}
}
