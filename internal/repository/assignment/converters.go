package assignment

import "recycling/internal/entities"

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}
	return &entities.Assignment{
		ID:                a.ID,
		BagID:             a.BagID,
		OfferedAgentID:    a.OfferedAgentID,
		AgentID:           a.AgentID,
		Status:            entities.AssignmentStatus(a.Status),
		UserPhone:         a.UserPhone,
		AgentPhone:        a.AgentPhone,
		RejectionReason:   a.RejectionReason,
		CancelReason:      a.CancelReason,
		DiscrepancyReport: a.DiscrepancyReport,
		ReleasedByAgentID: a.ReleasedByAgentID,
		AssignedAt:        a.AssignedAt,
		AcceptedAt:        a.AcceptedAt,
		StartedAt:         a.StartedAt,
		CompletedAt:       a.CompletedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func ToDomainList(assignmentModels []AssignmentDB) []entities.Assignment {
	assignments := make([]entities.Assignment, 0, len(assignmentModels))
	for i := range assignmentModels {
		assignments = append(assignments, *ToDomain(&assignmentModels[i]))
	}
	return assignments
}

func FromDomainModify(a *entities.AssignmentModify) *AssignmentModifyDB {
	if a == nil {
		return nil
	}
	assignmentModifyDB := &AssignmentModifyDB{
		ID:                a.ID,
		BagID:             a.BagID,
		OfferedAgentID:    a.OfferedAgentID,
		AgentID:           a.AgentID,
		ClearAgent:        a.ClearAgent,
		UserPhone:         a.UserPhone,
		AgentPhone:        a.AgentPhone,
		RejectionReason:   a.RejectionReason,
		CancelReason:      a.CancelReason,
		DiscrepancyReport: a.DiscrepancyReport,
		ReleasedByAgentID: a.ReleasedByAgentID,
		AcceptedAt:        a.AcceptedAt,
		StartedAt:         a.StartedAt,
		CompletedAt:       a.CompletedAt,
	}

	if a.Status != nil {
		status := a.Status.String()
		assignmentModifyDB.Status = &status
	}

	return assignmentModifyDB
}

func ToAgentDomain(a *AvailableAgentDB) *entities.Agent {
	if a == nil {
		return nil
	}
	return &entities.Agent{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Email:         a.Email,
		Phone:         a.Phone,
		Governorate:   a.Governorate,
		IsAvailable:   true,
		Approval:      entities.AgentApproved,
		AverageRating: a.AverageRating,
	}
}
