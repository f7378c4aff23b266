package user

import "recycling/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Phone:         u.Phone,
		PasswordHash:  u.PasswordHash,
		Governorate:   u.Governorate,
		Points:        u.Points,
		Rewards:       u.Rewards,
		CO2Saved:      u.CO2Saved,
		ItemsRecycled: u.ItemsRecycled,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// FromDomainModify пароль в открытом виде в базу не попадает, только хеш.
func FromDomainModify(u *entities.UserModify) *UserModifyDB {
	if u == nil {
		return nil
	}
	return &UserModifyDB{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Governorate:  u.Governorate,
	}
}
