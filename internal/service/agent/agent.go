package agent

import (
	"context"
	"fmt"
	"strings"

	"recycling/internal/entities"
)

type Agent struct {
	repository Repository
	notifier   Notifier
	txManager  TxManager
}

func New(repository Repository, notifier Notifier, txManager TxManager) *Agent {
	return &Agent{
		repository: repository,
		notifier:   notifier,
		txManager:  txManager,
	}
}

func (s *Agent) GetAgent(ctx context.Context, id int64) (*entities.Agent, error) {
	if id <= 0 {
		return nil, ErrInvalidAgentID
	}

	agent, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return agent, nil
}

// UpdateAgent профиль и доступность. Выйти на линию может только одобренный агент.
func (s *Agent) UpdateAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error) {
	if agentModify.ID == nil || *agentModify.ID <= 0 {
		return nil, ErrInvalidAgentID
	}
	if agentModify.FirstName == nil &&
		agentModify.LastName == nil &&
		agentModify.Phone == nil &&
		agentModify.Governorate == nil &&
		agentModify.IsAvailable == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if agentModify.FirstName != nil && !isValidName(*agentModify.FirstName) {
		return nil, ErrInvalidName
	}
	if agentModify.LastName != nil && !isValidName(*agentModify.LastName) {
		return nil, ErrInvalidName
	}
	if agentModify.Phone != nil && !isValidPhone(*agentModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if agentModify.Governorate != nil && !isValidGovernorate(*agentModify.Governorate) {
		return nil, ErrInvalidGovernorate
	}

	profile := entities.AgentModify{
		ID:          agentModify.ID,
		FirstName:   trimmed(agentModify.FirstName),
		LastName:    trimmed(agentModify.LastName),
		Phone:       trimmed(agentModify.Phone),
		Governorate: trimmed(agentModify.Governorate),
		IsAvailable: agentModify.IsAvailable,
	}

	var agent *entities.Agent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if profile.IsAvailable != nil && *profile.IsAvailable {
			current, err := s.repository.GetByID(ctx, *profile.ID)
			if err != nil {
				return fmt.Errorf("get agent: %w", err)
			}
			if current.Approval != entities.AgentApproved {
				return ErrAgentNotApproved
			}
		}

		var err error
		agent, err = s.repository.Update(ctx, profile)
		if err != nil {
			return fmt.Errorf("update agent: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return agent, nil
}

// SetApproval решение администратора по заявке агента. Неодобренный агент снимается с линии.
func (s *Agent) SetApproval(ctx context.Context, id int64, status entities.AgentApprovalStatus) (*entities.Agent, error) {
	if id <= 0 {
		return nil, ErrInvalidAgentID
	}
	if !isValidApproval(status) {
		return nil, ErrInvalidApproval
	}

	agentModify := entities.AgentModify{
		ID:       &id,
		Approval: &status,
	}
	if status != entities.AgentApproved {
		unavailable := false
		agentModify.IsAvailable = &unavailable
	}

	var agent *entities.Agent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		agent, err = s.repository.Update(ctx, agentModify)
		if err != nil {
			return fmt.Errorf("update agent approval: %w", err)
		}

		title, message := approvalMessage(status)
		if title == "" {
			return nil
		}

		err = s.notifier.Notify(ctx, agent.Holder(), title, message, entities.NotificationSystem)
		if err != nil {
			return fmt.Errorf("notify agent: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return agent, nil
}

// AgentsByApproval очередь заявок для администратора.
func (s *Agent) AgentsByApproval(ctx context.Context, status entities.AgentApprovalStatus) ([]entities.Agent, error) {
	if !isValidApproval(status) {
		return nil, ErrInvalidApproval
	}

	agents, err := s.repository.ListByApproval(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

func approvalMessage(status entities.AgentApprovalStatus) (title, message string) {
	switch status {
	case entities.AgentApproved:
		return "Account approved", "Your delivery account has been approved. You can now go online and accept orders."
	case entities.AgentRejected:
		return "Account rejected", "Your delivery account application has been rejected."
	default:
		return "", ""
	}
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
