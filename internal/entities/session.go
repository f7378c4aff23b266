package entities

import "time"

// Session результат входа: профиль владельца и подписанный токен доступа.
type Session struct {
	Identity  Identity
	Name      string
	Token     string
	ExpiresAt time.Time
}
