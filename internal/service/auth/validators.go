package auth

import (
	"net/mail"
	"strings"
)

const (
	minPasswordLength = 8
	// bcrypt не принимает пароли длиннее 72 байт
	maxPasswordLength = 72
)

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && len(name) <= 100
}

func isValidEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	return err == nil && address.Address == email
}

func isValidPhone(phone string) bool {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if len(phone) < 8 || len(phone) > 15 {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidGovernorate(governorate string) bool {
	governorate = strings.TrimSpace(governorate)
	return governorate != "" && len(governorate) <= 64
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
