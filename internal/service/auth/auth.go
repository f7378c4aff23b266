package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recycling/internal/entities"
	"recycling/internal/service/agent"
	"recycling/internal/service/user"
)

type Auth struct {
	users  UserRepository
	agents AgentRepository
	tokens TokenIssuer
}

func New(users UserRepository, agents AgentRepository, tokens TokenIssuer) *Auth {
	return &Auth{
		users:  users,
		agents: agents,
		tokens: tokens,
	}
}

func (s *Auth) RegisterUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.FirstName == nil ||
		userModify.LastName == nil ||
		userModify.Email == nil ||
		userModify.Phone == nil ||
		userModify.Password == nil ||
		userModify.Governorate == nil {
		return nil, ErrMissingRequiredFields
	}

	email, err := validateRegistration(
		*userModify.FirstName, *userModify.LastName, *userModify.Email,
		*userModify.Phone, *userModify.Governorate, *userModify.Password,
	)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(*userModify.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, entities.UserModify{
		FirstName:    trimmed(userModify.FirstName),
		LastName:     trimmed(userModify.LastName),
		Email:        &email,
		Phone:        trimmed(userModify.Phone),
		PasswordHash: &hash,
		Governorate:  trimmed(userModify.Governorate),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// RegisterAgent заводит агента на проверку. До одобрения он не выходит на линию и не входит в систему.
func (s *Auth) RegisterAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error) {
	if agentModify.FirstName == nil ||
		agentModify.LastName == nil ||
		agentModify.Email == nil ||
		agentModify.Phone == nil ||
		agentModify.Password == nil ||
		agentModify.Governorate == nil {
		return nil, ErrMissingRequiredFields
	}

	email, err := validateRegistration(
		*agentModify.FirstName, *agentModify.LastName, *agentModify.Email,
		*agentModify.Phone, *agentModify.Governorate, *agentModify.Password,
	)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(*agentModify.Password)
	if err != nil {
		return nil, err
	}

	pending := entities.AgentPending
	unavailable := false
	created, err := s.agents.Create(ctx, entities.AgentModify{
		FirstName:    trimmed(agentModify.FirstName),
		LastName:     trimmed(agentModify.LastName),
		Email:        &email,
		Phone:        trimmed(agentModify.Phone),
		PasswordHash: &hash,
		Governorate:  trimmed(agentModify.Governorate),
		IsAvailable:  &unavailable,
		Approval:     &pending,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	return created, nil
}

func (s *Auth) Login(ctx context.Context, role entities.HolderKind, email, password string) (*entities.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	switch role {
	case entities.HolderUser:
		return s.loginUser(ctx, email, password)
	case entities.HolderAgent:
		return s.loginAgent(ctx, email, password)
	default:
		return nil, ErrInvalidRole
	}
}

// ChangePassword меняет пароль после проверки текущего.
func (s *Auth) ChangePassword(ctx context.Context, holder entities.Holder, oldPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	switch holder.Kind {
	case entities.HolderUser:
		current, err := s.users.GetByID(ctx, holder.ID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if _, err = verifyPassword(current.PasswordHash, oldPassword); err != nil {
			return err
		}

		hash, err := hashPassword(newPassword)
		if err != nil {
			return err
		}
		_, err = s.users.Update(ctx, entities.UserModify{ID: &holder.ID, PasswordHash: &hash})
		if err != nil {
			return fmt.Errorf("update user password: %w", err)
		}
		return nil

	case entities.HolderAgent:
		current, err := s.agents.GetByID(ctx, holder.ID)
		if err != nil {
			return fmt.Errorf("get agent: %w", err)
		}
		if _, err = verifyPassword(current.PasswordHash, oldPassword); err != nil {
			return err
		}

		hash, err := hashPassword(newPassword)
		if err != nil {
			return err
		}
		_, err = s.agents.Update(ctx, entities.AgentModify{ID: &holder.ID, PasswordHash: &hash})
		if err != nil {
			return fmt.Errorf("update agent password: %w", err)
		}
		return nil

	default:
		return ErrInvalidRole
	}
}

func (s *Auth) loginUser(ctx context.Context, email, password string) (*entities.Session, error) {
	found, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	rehash, err := verifyPassword(found.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if rehash {
		hash, ok, err := rehashLegacy(password)
		if err != nil {
			return nil, err
		}
		if ok {
			_, err = s.users.Update(ctx, entities.UserModify{ID: &found.ID, PasswordHash: &hash})
			if err != nil {
				return nil, fmt.Errorf("migrate user password: %w", err)
			}
		}
	}

	return s.session(entities.Identity{Holder: found.Holder(), Email: found.Email}, found.FullName())
}

func (s *Auth) loginAgent(ctx context.Context, email, password string) (*entities.Session, error) {
	found, err := s.agents.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, agent.ErrAgentNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get agent by email: %w", err)
	}

	rehash, err := verifyPassword(found.PasswordHash, password)
	if err != nil {
		return nil, err
	}

	switch found.Approval {
	case entities.AgentApproved:
	case entities.AgentRejected:
		return nil, ErrAccountRejected
	default:
		return nil, ErrAccountPending
	}

	if rehash {
		hash, ok, err := rehashLegacy(password)
		if err != nil {
			return nil, err
		}
		if ok {
			_, err = s.agents.Update(ctx, entities.AgentModify{ID: &found.ID, PasswordHash: &hash})
			if err != nil {
				return nil, fmt.Errorf("migrate agent password: %w", err)
			}
		}
	}

	return s.session(entities.Identity{Holder: found.Holder(), Email: found.Email}, found.FullName())
}

func (s *Auth) session(identity entities.Identity, name string) (*entities.Session, error) {
	token, expiresAt, err := s.tokens.Issue(identity.Holder.ID, identity.Holder.Kind.String(), identity.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entities.Session{
		Identity:  identity,
		Name:      name,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func validateRegistration(firstName, lastName, email, phone, governorate, password string) (string, error) {
	if !isValidName(firstName) || !isValidName(lastName) {
		return "", ErrInvalidName
	}
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}
	if !isValidPhone(phone) {
		return "", ErrInvalidPhone
	}
	if !isValidGovernorate(governorate) {
		return "", ErrInvalidGovernorate
	}
	if err := validatePassword(password); err != nil {
		return "", err
	}
	return email, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
