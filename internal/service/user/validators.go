package user

import "strings"

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && len(name) <= 100
}

// isValidPhone цифры с необязательным ведущим '+', от 8 до 15 знаков.
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
