package user

import (
	"context"
	"fmt"
	"strings"

	"recycling/internal/entities"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateUser меняет только профиль. Email и пароль здесь не обновляются.
func (s *User) UpdateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil || *userModify.ID <= 0 {
		return nil, ErrInvalidUserID
	}
	if userModify.FirstName == nil &&
		userModify.LastName == nil &&
		userModify.Phone == nil &&
		userModify.Governorate == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if userModify.FirstName != nil && !isValidName(*userModify.FirstName) {
		return nil, ErrInvalidName
	}
	if userModify.LastName != nil && !isValidName(*userModify.LastName) {
		return nil, ErrInvalidName
	}
	if userModify.Phone != nil && !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if userModify.Governorate != nil && !isValidGovernorate(*userModify.Governorate) {
		return nil, ErrInvalidGovernorate
	}

	profile := entities.UserModify{
		ID:          userModify.ID,
		FirstName:   trimmed(userModify.FirstName),
		LastName:    trimmed(userModify.LastName),
		Phone:       trimmed(userModify.Phone),
		Governorate: trimmed(userModify.Governorate),
	}

	user, err := s.repository.Update(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
