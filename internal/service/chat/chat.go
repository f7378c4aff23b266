package chat

import (
	"context"
	"fmt"
	"strings"

	"recycling/internal/entities"
)

// Chat переписка покупателя и агента в рамках назначения.
type Chat struct {
	repository  Repository
	assignments AssignmentRepository
	bags        BagRepository
	notifier    Notifier
	txManager   TxManager
}

func New(
	repository Repository,
	assignments AssignmentRepository,
	bags BagRepository,
	notifier Notifier,
	txManager TxManager,
) *Chat {
	return &Chat{
		repository:  repository,
		assignments: assignments,
		bags:        bags,
		notifier:    notifier,
		txManager:   txManager,
	}
}

// Send сохраняет сообщение и уведомляет собеседника первыми символами текста.
// Сообщение и уведомление пишутся в одной транзакции: без уведомления сообщение не сохраняется.
func (s *Chat) Send(ctx context.Context, assignmentID int64, sender entities.Identity, text string) (*entities.ChatMessage, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if !isValidMessageLength(text) {
		return nil, ErrMessageTooLong
	}

	counterpart, err := s.counterpart(ctx, assignmentID, sender.Holder)
	if err != nil {
		return nil, err
	}

	var created *entities.ChatMessage
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.repository.Create(ctx, entities.ChatMessage{
			AssignmentID: assignmentID,
			SenderType:   sender.Holder.Kind,
			SenderEmail:  sender.Email,
			Message:      text,
		})
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}

		if counterpart == nil {
			return nil
		}
		err = s.notifier.Notify(ctx, *counterpart, "New message", preview(text), entities.NotificationChat)
		if err != nil {
			return fmt.Errorf("notify %s: %w", counterpart.Kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Chat) Messages(ctx context.Context, assignmentID int64, requester entities.Holder) ([]entities.ChatMessage, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	if _, err := s.counterpart(ctx, assignmentID, requester); err != nil {
		return nil, err
	}

	messages, err := s.repository.ListForAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// counterpart проверяет участие holder в переписке и возвращает второго участника.
// Пока агент не принял заказ, второго участника у покупателя нет.
func (s *Chat) counterpart(ctx context.Context, assignmentID int64, holder entities.Holder) (*entities.Holder, error) {
	current, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	bag, err := s.bags.GetByID(ctx, current.BagID)
	if err != nil {
		return nil, fmt.Errorf("get bag: %w", err)
	}
	owner := entities.Holder{Kind: entities.HolderUser, ID: bag.UserID}

	switch holder.Kind {
	case entities.HolderUser:
		if holder != owner {
			return nil, ErrNotParticipant
		}
		if current.AgentID == nil {
			return nil, nil
		}
		return &entities.Holder{Kind: entities.HolderAgent, ID: *current.AgentID}, nil
	case entities.HolderAgent:
		if !current.IsHeldBy(holder.ID) {
			return nil, ErrNotParticipant
		}
		return &owner, nil
	default:
		return nil, ErrNotParticipant
	}
}
