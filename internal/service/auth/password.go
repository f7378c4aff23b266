package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var hashCost = bcrypt.DefaultCost

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func isBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// verifyPassword сверяет пароль с сохранённым значением. Старые учётки хранят пароль
// открытым текстом: при совпадении rehash = true и вызывающий обязан сохранить хэш.
func verifyPassword(stored, supplied string) (rehash bool, err error) {
	if isBcryptHash(stored) {
		// иначе совпал бы любой пароль с теми же первыми 72 байтами
		if len(supplied) > maxPasswordLength {
			return false, ErrInvalidCredentials
		}
		err = bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, ErrInvalidCredentials
		}
		if err != nil {
			return false, fmt.Errorf("compare password: %w", err)
		}
		return false, nil
	}

	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return false, ErrInvalidCredentials
	}
	return true, nil
}

// rehashLegacy хэширует старый пароль из открытого текста. Пароль длиннее 72 байт
// bcrypt не примет: такая учётка остаётся как есть до смены пароля.
func rehashLegacy(password string) (hash string, ok bool, err error) {
	hash, err = hashPassword(password)
	if errors.Is(err, ErrPasswordTooLong) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return hash, true, nil
}
