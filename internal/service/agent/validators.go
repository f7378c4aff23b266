package agent

import (
	"strings"

	"recycling/internal/entities"
)

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && len(name) <= 100
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

func isValidApproval(status entities.AgentApprovalStatus) bool {
	switch status {
	case entities.AgentPending, entities.AgentApproved, entities.AgentRejected:
		return true
	default:
		return false
	}
}
