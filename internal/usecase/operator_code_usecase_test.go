package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
	mock_interfaces "github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOperatorCodeUseCase_GenerateCode_Validations(t *testing.T) {
	uc := NewOperatorCodeUseCase(nil, nil)

	t.Run("empty operator id", func(t *testing.T) {
		_, err := uc.GenerateCode(context.Background(), "  ", 0, 0)
		if !errors.Is(err, ErrInvalidOperatorID) {
			t.Fatalf("expected ErrInvalidOperatorID, got %v", err)
		}
	})

	t.Run("length below minimum", func(t *testing.T) {
		_, err := uc.GenerateCode(context.Background(), "op-1", 3, 30)
		if !errors.Is(err, ErrInvalidCodeLength) {
			t.Fatalf("expected ErrInvalidCodeLength, got %v", err)
		}
	})

	t.Run("length above maximum", func(t *testing.T) {
		_, err := uc.GenerateCode(context.Background(), "op-1", 9, 30)
		if !errors.Is(err, ErrInvalidCodeLength) {
			t.Fatalf("expected ErrInvalidCodeLength, got %v", err)
		}
	})

	t.Run("negative expiration", func(t *testing.T) {
		_, err := uc.GenerateCode(context.Background(), "op-1", 4, -5)
		if !errors.Is(err, ErrInvalidCodeExpiration) {
			t.Fatalf("expected ErrInvalidCodeExpiration, got %v", err)
		}
	})
}

func TestOperatorCodeUseCase_GenerateCode_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
	uc := NewOperatorCodeUseCase(repo, nil)

	var inserted entities.OperatorCode
	repo.EXPECT().MarkAllUnusedUsed(gomock.Any(), "op-1", gomock.Any()).Return(nil, nil)
	repo.EXPECT().NextID(gomock.Any(), "op-1").Return(int64(7), nil)
	repo.EXPECT().InsertUnused(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, code entities.OperatorCode) error {
			inserted = code
			return nil
		})

	code, err := uc.GenerateCode(context.Background(), "op-1", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code.Code) != DefaultCodeLength {
		t.Fatalf("expected %d-digit code, got %q", DefaultCodeLength, code.Code)
	}
	if _, err := strconv.Atoi(code.Code); err != nil {
		t.Fatalf("expected numeric code, got %q", code.Code)
	}
	if code.Code[0] == '0' {
		t.Fatalf("code must not start with zero: %q", code.Code)
	}
	ttl := code.ExpiresAt.Sub(code.CreatedAt)
	if ttl != DefaultCodeExpirationMinutes*time.Minute {
		t.Fatalf("expected %d minute expiration, got %v", DefaultCodeExpirationMinutes, ttl)
	}
	if inserted.ID != 7 || code.ID != 7 {
		t.Fatalf("expected code id 7, got inserted=%d returned=%d", inserted.ID, code.ID)
	}
}

func TestOperatorCodeUseCase_GenerateCode_InvalidatesPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
	bus := mock_interfaces.NewMockICodeEventBus(ctrl)
	uc := NewOperatorCodeUseCase(repo, bus)

	previous := entities.OperatorCode{ID: 3, OperatorID: "op-1", Code: "1234", ExpiresAt: time.Now().UTC().Add(time.Minute)}

	repo.EXPECT().MarkAllUnusedUsed(gomock.Any(), "op-1", gomock.Any()).Return([]entities.OperatorCode{previous}, nil)
	repo.EXPECT().NextID(gomock.Any(), "op-1").Return(int64(4), nil)
	repo.EXPECT().InsertUnused(gomock.Any(), gomock.Any()).Return(nil)

	var published []interfaces.CodeEvent
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev interfaces.CodeEvent) error {
			published = append(published, ev)
			return nil
		}).Times(2)

	if _, err := uc.GenerateCode(context.Background(), "op-1", 4, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(published) != 2 {
		t.Fatalf("expected 2 events (invalidation + insert), got %d", len(published))
	}
	if !published[0].Consumed() {
		t.Fatalf("first event should be the invalidation of code 3")
	}
	if published[0].New.ID != 3 || published[1].New.ID != 4 {
		t.Fatalf("unexpected event ids: %d, %d", published[0].New.ID, published[1].New.ID)
	}
}

func TestOperatorCodeUseCase_GenerateCode_AdoptsRaceWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
	uc := NewOperatorCodeUseCase(repo, nil)

	winner := entities.OperatorCode{ID: 9, OperatorID: "op-1", Code: "5678", ExpiresAt: time.Now().UTC().Add(30 * time.Minute)}

	repo.EXPECT().MarkAllUnusedUsed(gomock.Any(), "op-1", gomock.Any()).Return(nil, nil)
	repo.EXPECT().NextID(gomock.Any(), "op-1").Return(int64(8), nil)
	repo.EXPECT().InsertUnused(gomock.Any(), gomock.Any()).Return(interfaces.ErrActiveCodeExists)
	repo.EXPECT().GetActive(gomock.Any(), "op-1", gomock.Any()).Return(winner, nil)

	code, err := uc.GenerateCode(context.Background(), "op-1", 4, 30)
	if err != nil {
		t.Fatalf("expected the winner's code, got error %v", err)
	}
	if code.ID != 9 || code.Code != "5678" {
		t.Fatalf("expected adopted code 9/5678, got %d/%s", code.ID, code.Code)
	}
}

func TestOperatorCodeUseCase_GenerateCode_HealsStaleSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
	uc := NewOperatorCodeUseCase(repo, nil)

	// The slot rejects the insert but no live code backs the claim: a
	// writer died between stamping its code and releasing the lock. The
	// lock must be healed and the insert retried, never left wedged and
	// never released while a live claim could stand behind it.
	repo.EXPECT().MarkAllUnusedUsed(gomock.Any(), "op-1", gomock.Any()).Return(nil, nil)
	repo.EXPECT().NextID(gomock.Any(), "op-1").Return(int64(8), nil)
	gomock.InOrder(
		repo.EXPECT().InsertUnused(gomock.Any(), gomock.Any()).Return(interfaces.ErrActiveCodeExists),
		repo.EXPECT().GetActive(gomock.Any(), "op-1", gomock.Any()).Return(entities.OperatorCode{}, nil),
		repo.EXPECT().ReleaseStaleSlot(gomock.Any(), "op-1").Return(true, nil),
		repo.EXPECT().InsertUnused(gomock.Any(), gomock.Any()).Return(nil),
	)

	code, err := uc.GenerateCode(context.Background(), "op-1", 4, 30)
	if err != nil {
		t.Fatalf("expected insert to succeed after healing, got %v", err)
	}
	if code.ID != 8 {
		t.Fatalf("expected own code 8 after retry, got %d", code.ID)
	}
}

func TestOperatorCodeUseCase_ValidateCode(t *testing.T) {
	t.Run("valid code has no side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
		uc := NewOperatorCodeUseCase(repo, nil)

		match := entities.OperatorCode{ID: 5, OperatorID: "op-1", Code: "4321"}
		// Only the read is expected: no MarkUsed, no publish.
		repo.EXPECT().FindValidByCode(gomock.Any(), "4321", gomock.Any()).Return(match, nil)

		valid, err := uc.ValidateCode(context.Background(), " 4321 ")
		if err != nil || !valid {
			t.Fatalf("expected valid=true, got valid=%v err=%v", valid, err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
		uc := NewOperatorCodeUseCase(repo, nil)

		repo.EXPECT().FindValidByCode(gomock.Any(), "0000", gomock.Any()).Return(entities.OperatorCode{}, nil)

		valid, err := uc.ValidateCode(context.Background(), "0000")
		if err != nil || valid {
			t.Fatalf("expected valid=false, got valid=%v err=%v", valid, err)
		}
	})

	t.Run("empty code short-circuits", func(t *testing.T) {
		uc := NewOperatorCodeUseCase(nil, nil)
		valid, err := uc.ValidateCode(context.Background(), "   ")
		if err != nil || valid {
			t.Fatalf("expected valid=false without repo call, got valid=%v err=%v", valid, err)
		}
	})
}

func TestOperatorCodeUseCase_InvalidateCode(t *testing.T) {
	t.Run("already used is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
		uc := NewOperatorCodeUseCase(repo, nil)

		usedAt := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "op-1", int64(2)).Return(
			entities.OperatorCode{ID: 2, OperatorID: "op-1", UsedAt: &usedAt}, nil)

		if err := uc.InvalidateCode(context.Background(), "op-1", 2); err != nil {
			t.Fatalf("expected idempotent success, got %v", err)
		}
	})

	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
		uc := NewOperatorCodeUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "op-1", int64(99)).Return(entities.OperatorCode{}, nil)

		if err := uc.InvalidateCode(context.Background(), "op-1", 99); !errors.Is(err, ErrCodeNotFound) {
			t.Fatalf("expected ErrCodeNotFound, got %v", err)
		}
	})

	t.Run("unused code is stamped and published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
		bus := mock_interfaces.NewMockICodeEventBus(ctrl)
		uc := NewOperatorCodeUseCase(repo, bus)

		repo.EXPECT().GetByID(gomock.Any(), "op-1", int64(2)).Return(
			entities.OperatorCode{ID: 2, OperatorID: "op-1"}, nil)
		repo.EXPECT().MarkUsed(gomock.Any(), "op-1", int64(2), gomock.Any()).Return(nil)
		bus.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev interfaces.CodeEvent) error {
				if !ev.Consumed() {
					t.Errorf("expected a consumption event")
				}
				return nil
			})

		if err := uc.InvalidateCode(context.Background(), "op-1", 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOperatorCodeUseCase_GetOrCreateActiveCode(t *testing.T) {
	t.Run("existing active code is returned untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
		uc := NewOperatorCodeUseCase(repo, nil)

		active := entities.OperatorCode{ID: 6, OperatorID: "op-1", Code: "8765"}
		repo.EXPECT().GetActive(gomock.Any(), "op-1", gomock.Any()).Return(active, nil)

		code, err := uc.GetOrCreateActiveCode(context.Background(), "op-1")
		if err != nil || code.ID != 6 {
			t.Fatalf("expected existing code 6, got %v err=%v", code.ID, err)
		}
	})

	t.Run("generates when none exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCodeRepository(ctrl)
		uc := NewOperatorCodeUseCase(repo, nil)

		repo.EXPECT().GetActive(gomock.Any(), "op-1", gomock.Any()).Return(entities.OperatorCode{}, nil)
		repo.EXPECT().MarkAllUnusedUsed(gomock.Any(), "op-1", gomock.Any()).Return(nil, nil)
		repo.EXPECT().NextID(gomock.Any(), "op-1").Return(int64(1), nil)
		repo.EXPECT().InsertUnused(gomock.Any(), gomock.Any()).Return(nil)

		code, err := uc.GetOrCreateActiveCode(context.Background(), "op-1")
		if err != nil || code.ID != 1 {
			t.Fatalf("expected freshly generated code 1, got %v err=%v", code.ID, err)
		}
	})
}
