package agent

import (
	"recycling/internal/entities"
)

func ToDomain(a *AgentDB) *entities.Agent {
	if a == nil {
		return nil
	}

	approval := entities.AgentApprovalStatus(a.ApprovalStatus)
	return &entities.Agent{
		ID:                   a.ID,
		FirstName:            a.FirstName,
		LastName:             a.LastName,
		Email:                a.Email,
		Phone:                a.Phone,
		PasswordHash:         a.PasswordHash,
		Governorate:          a.Governorate,
		IsAvailable:          a.IsAvailable,
		Approval:             approval,
		Points:               a.Points,
		Rewards:              a.Rewards,
		TotalOrdersDelivered: a.TotalOrdersDelivered,
		AverageRating:        a.AverageRating,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func FromDomainModify(agentModify *entities.AgentModify) *AgentModifyDB {
	if agentModify == nil {
		return nil
	}
	agentDB := &AgentModifyDB{
		ID:           agentModify.ID,
		FirstName:    agentModify.FirstName,
		LastName:     agentModify.LastName,
		Email:        agentModify.Email,
		Phone:        agentModify.Phone,
		PasswordHash: agentModify.PasswordHash,
		Governorate:  agentModify.Governorate,
		IsAvailable:  agentModify.IsAvailable,
	}

	if agentModify.Approval != nil {
		approval := agentModify.Approval.String()
		agentDB.ApprovalStatus = &approval
	}

	return agentDB
}

func ToDomainList(agentModels []AgentDB) []entities.Agent {
	agents := make([]entities.Agent, 0, len(agentModels))
	for i := range agentModels {
		agents = append(agents, *ToDomain(&agentModels[i]))
	}
	return agents
}
