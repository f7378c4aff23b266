package ledger

import "recycling/internal/entities"

func ToDomain(a *ActivityDB) *entities.Activity {
	if a == nil {
		return nil
	}
	return &entities.Activity{
		ID: a.ID,
		Holder: entities.Holder{
			Kind: entities.HolderKind(a.HolderKind),
			ID:   a.HolderID,
		},
		Title:     a.Title,
		Points:    a.Points,
		Type:      entities.ActivityType(a.Type),
		CreatedAt: a.CreatedAt,
	}
}

func ToDomainList(activityModels []ActivityDB) []entities.Activity {
	activities := make([]entities.Activity, 0, len(activityModels))
	for i := range activityModels {
		activities = append(activities, *ToDomain(&activityModels[i]))
	}
	return activities
}

func ToBalanceDomain(kind entities.HolderKind, b *BalanceDB) *entities.Balance {
	if b == nil {
		return nil
	}
	return &entities.Balance{
		Holder:  entities.Holder{Kind: kind, ID: b.ID},
		Email:   b.Email,
		Points:  b.Points,
		Rewards: b.Rewards,
	}
}
