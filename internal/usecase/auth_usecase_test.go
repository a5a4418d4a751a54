package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	mock_interfaces "github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("success normalizes the email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		operators := mock_interfaces.NewMockIOperatorRepository(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(operators, sessions)

		operator := entities.Operator{
			ID:           "op-1",
			Email:        "ana@pivvot.co",
			PasswordHash: hashPassword(t, "s3cret"),
			Active:       true,
		}
		operators.EXPECT().GetByEmail(gomock.Any(), "ana@pivvot.co").Return(operator, nil)

		var saved entities.OperatorSession
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.OperatorSession) error {
				saved = s
				return nil
			})

		session, err := uc.Login(context.Background(), "  ANA@Pivvot.co ", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.AccessToken == "" || session.RefreshToken == "" {
			t.Fatalf("expected opaque tokens, got %+v", session)
		}
		if session.AccessToken == session.RefreshToken {
			t.Fatalf("access and refresh tokens must differ")
		}
		if saved.Operator.ID != "op-1" {
			t.Fatalf("session must carry the operator, got %+v", saved.Operator)
		}
		if !session.ExpiresAt.After(time.Now()) {
			t.Fatalf("session must expire in the future, got %v", session.ExpiresAt)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		operators := mock_interfaces.NewMockIOperatorRepository(ctrl)
		uc := NewAuthUseCase(operators, nil)

		operators.EXPECT().GetByEmail(gomock.Any(), "ana@pivvot.co").Return(entities.Operator{
			ID:           "op-1",
			PasswordHash: hashPassword(t, "s3cret"),
			Active:       true,
		}, nil)

		if _, err := uc.Login(context.Background(), "ana@pivvot.co", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		operators := mock_interfaces.NewMockIOperatorRepository(ctrl)
		uc := NewAuthUseCase(operators, nil)

		operators.EXPECT().GetByEmail(gomock.Any(), "ghost@pivvot.co").Return(entities.Operator{}, nil)

		if _, err := uc.Login(context.Background(), "ghost@pivvot.co", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		operators := mock_interfaces.NewMockIOperatorRepository(ctrl)
		uc := NewAuthUseCase(operators, nil)

		operators.EXPECT().GetByEmail(gomock.Any(), "ana@pivvot.co").Return(entities.Operator{
			ID:           "op-1",
			PasswordHash: hashPassword(t, "s3cret"),
			Active:       false,
		}, nil)

		if _, err := uc.Login(context.Background(), "ana@pivvot.co", "s3cret"); !errors.Is(err, ErrOperatorInactive) {
			t.Fatalf("expected ErrOperatorInactive, got %v", err)
		}
	})
}

func TestAuthUseCase_RefreshSession(t *testing.T) {
	t.Run("rotates the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		operators := mock_interfaces.NewMockIOperatorRepository(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(operators, sessions)

		old := entities.OperatorSession{
			Operator:     entities.Operator{ID: "op-1", Active: true},
			AccessToken:  "old-access",
			RefreshToken: "old-refresh",
			ExpiresAt:    time.Now().Add(time.Minute),
		}
		sessions.EXPECT().GetByRefreshToken(gomock.Any(), "old-refresh").Return(old, nil)
		operators.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Operator{ID: "op-1", Active: true}, nil)
		sessions.EXPECT().Delete(gomock.Any(), "old-access").Return(nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		fresh, err := uc.RefreshSession(context.Background(), "old-refresh")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fresh.AccessToken == "old-access" || fresh.RefreshToken == "old-refresh" {
			t.Fatalf("refresh must rotate both tokens, got %+v", fresh)
		}
	})

	t.Run("deactivated account cannot refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		operators := mock_interfaces.NewMockIOperatorRepository(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(operators, sessions)

		old := entities.OperatorSession{
			Operator:     entities.Operator{ID: "op-1", Active: true},
			AccessToken:  "old-access",
			RefreshToken: "old-refresh",
		}
		sessions.EXPECT().GetByRefreshToken(gomock.Any(), "old-refresh").Return(old, nil)
		operators.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Operator{ID: "op-1", Active: false}, nil)
		sessions.EXPECT().Delete(gomock.Any(), "old-access").Return(nil)

		if _, err := uc.RefreshSession(context.Background(), "old-refresh"); !errors.Is(err, ErrOperatorInactive) {
			t.Fatalf("expected ErrOperatorInactive, got %v", err)
		}
	})

	t.Run("unknown refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, sessions)

		sessions.EXPECT().GetByRefreshToken(gomock.Any(), "ghost").Return(entities.OperatorSession{}, nil)

		if _, err := uc.RefreshSession(context.Background(), "ghost"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestAuthUseCase_CurrentSession(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.CurrentSession(context.Background(), " "); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("expired token reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, sessions)

		sessions.EXPECT().GetByAccessToken(gomock.Any(), "stale").Return(entities.OperatorSession{}, nil)

		if _, err := uc.CurrentSession(context.Background(), "stale"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}
