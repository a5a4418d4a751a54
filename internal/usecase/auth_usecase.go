package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
)

const sessionTTL = time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOperatorInactive   = errors.New("operator account is inactive")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

// IAuthUseCase is the opaque identity provider for operators: sign-in
// with credentials, sign-out, current-session, refresh-session.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.OperatorSession, error)
	Logout(ctx context.Context, accessToken string) error
	CurrentSession(ctx context.Context, accessToken string) (entities.OperatorSession, error)
	RefreshSession(ctx context.Context, refreshToken string) (entities.OperatorSession, error)
}

type AuthUseCase struct {
	operators interfaces.IOperatorRepository
	sessions  interfaces.ISessionStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(operators interfaces.IOperatorRepository, sessions interfaces.ISessionStore) *AuthUseCase {
	return &AuthUseCase{operators: operators, sessions: sessions}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.OperatorSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.OperatorSession{}, ErrInvalidCredentials
	}

	operator, err := u.operators.GetByEmail(ctx, email)
	if err != nil {
		return entities.OperatorSession{}, err
	}
	if operator.ID == "" {
		return entities.OperatorSession{}, ErrInvalidCredentials
	}
	if !operator.Active {
		return entities.OperatorSession{}, ErrOperatorInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)) != nil {
		return entities.OperatorSession{}, ErrInvalidCredentials
	}

	session, err := u.newSession(ctx, operator)
	if err != nil {
		return entities.OperatorSession{}, err
	}
	log.Printf("[auth][usecase] login success operator_id=%s", operator.ID)
	return session, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, accessToken string) error {
	if strings.TrimSpace(accessToken) == "" {
		return ErrSessionNotFound
	}
	return u.sessions.Delete(ctx, accessToken)
}

func (u *AuthUseCase) CurrentSession(ctx context.Context, accessToken string) (entities.OperatorSession, error) {
	if strings.TrimSpace(accessToken) == "" {
		return entities.OperatorSession{}, ErrSessionNotFound
	}

	session, err := u.sessions.GetByAccessToken(ctx, accessToken)
	if err != nil {
		return entities.OperatorSession{}, err
	}
	if session.AccessToken == "" {
		return entities.OperatorSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (u *AuthUseCase) RefreshSession(ctx context.Context, refreshToken string) (entities.OperatorSession, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return entities.OperatorSession{}, ErrSessionNotFound
	}

	old, err := u.sessions.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return entities.OperatorSession{}, err
	}
	if old.AccessToken == "" {
		return entities.OperatorSession{}, ErrSessionNotFound
	}

	// Re-read the account so a deactivation takes effect on refresh.
	operator, err := u.operators.GetByID(ctx, old.Operator.ID)
	if err != nil {
		return entities.OperatorSession{}, err
	}
	if operator.ID == "" || !operator.Active {
		_ = u.sessions.Delete(ctx, old.AccessToken)
		return entities.OperatorSession{}, ErrOperatorInactive
	}

	if err := u.sessions.Delete(ctx, old.AccessToken); err != nil {
		log.Printf("[auth][usecase] stale session delete failed operator_id=%s err=%v", operator.ID, err)
	}
	return u.newSession(ctx, operator)
}

func (u *AuthUseCase) newSession(ctx context.Context, operator entities.Operator) (entities.OperatorSession, error) {
	session := entities.OperatorSession{
		Operator:     operator,
		AccessToken:  uuid.NewString(),
		RefreshToken: uuid.NewString(),
		ExpiresAt:    time.Now().UTC().Add(sessionTTL),
	}
	if err := u.sessions.Save(ctx, session); err != nil {
		return entities.OperatorSession{}, err
	}
	return session, nil
}
