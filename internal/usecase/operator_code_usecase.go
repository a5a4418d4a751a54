package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
)

const (
	CodeMinLength                = 4
	CodeMaxLength                = 8
	DefaultCodeLength            = 4
	DefaultCodeExpirationMinutes = 30
)

var (
	ErrInvalidOperatorID     = errors.New("invalid operator id")
	ErrInvalidCodeLength     = fmt.Errorf("code length must be between %d and %d", CodeMinLength, CodeMaxLength)
	ErrInvalidCodeExpiration = errors.New("expiration minutes must be greater than 0")
	ErrInvalidCodeID         = errors.New("invalid code id")
	ErrCodeNotFound          = errors.New("operator code not found")
	ErrCodeGeneration        = errors.New("could not generate operator code")
)

// IOperatorCodeUseCase exposes the operator-code lifecycle.
//
// State machine per code row: unused+unexpired ("new" under 5s, then
// "active") -> expired | used. Both terminal; the operator's active slot
// is refilled by generating a new row, never by resurrecting an old one.

type IOperatorCodeUseCase interface {
	// GetActiveCode returns the single unused, unexpired code for the
	// operator, or a zero-value code when there is none. Read-only.
	GetActiveCode(ctx context.Context, operatorID string) (entities.OperatorCode, error)

	// GetOrCreateActiveCode returns the active code, generating one with
	// default parameters when none exists.
	GetOrCreateActiveCode(ctx context.Context, operatorID string) (entities.OperatorCode, error)

	// GenerateCode invalidates every unused code for the operator (expired
	// ones included) and inserts a fresh one. Under concurrent calls the
	// loser of the store's uniqueness constraint adopts the winner's code.
	GenerateCode(ctx context.Context, operatorID string, length, expirationMinutes int) (entities.OperatorCode, error)

	// InvalidateCode marks one code as used. Idempotent.
	InvalidateCode(ctx context.Context, operatorID string, codeID int64) error

	// ValidateCode reports whether the literal code string is redeemable
	// right now. No side effects: consumption happens only inside the sale
	// transaction, so a code survives any number of validations.
	ValidateCode(ctx context.Context, code string) (bool, error)

	// ResolveValidCode is ValidateCode returning the matched row, for
	// callers that need its identity (the sale transaction).
	ResolveValidCode(ctx context.Context, code string) (entities.OperatorCode, error)

	// ListCodes returns the operator's full code history, newest first.
	ListCodes(ctx context.Context, operatorID string) ([]entities.OperatorCode, error)
}

type OperatorCodeUseCase struct {
	repo interfaces.IOperatorCodeRepository
	bus  interfaces.ICodeEventBus
}

var _ IOperatorCodeUseCase = (*OperatorCodeUseCase)(nil)

func NewOperatorCodeUseCase(repo interfaces.IOperatorCodeRepository, bus interfaces.ICodeEventBus) *OperatorCodeUseCase {
	return &OperatorCodeUseCase{repo: repo, bus: bus}
}

func (u *OperatorCodeUseCase) GetActiveCode(ctx context.Context, operatorID string) (entities.OperatorCode, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return entities.OperatorCode{}, ErrInvalidOperatorID
	}
	return u.repo.GetActive(ctx, operatorID, time.Now().UTC())
}

func (u *OperatorCodeUseCase) GetOrCreateActiveCode(ctx context.Context, operatorID string) (entities.OperatorCode, error) {
	active, err := u.GetActiveCode(ctx, operatorID)
	if err != nil {
		return entities.OperatorCode{}, err
	}
	if active.ID != 0 {
		return active, nil
	}
	return u.GenerateCode(ctx, operatorID, DefaultCodeLength, DefaultCodeExpirationMinutes)
}

func (u *OperatorCodeUseCase) GenerateCode(ctx context.Context, operatorID string, length, expirationMinutes int) (entities.OperatorCode, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return entities.OperatorCode{}, ErrInvalidOperatorID
	}
	if length == 0 {
		length = DefaultCodeLength
	}
	if expirationMinutes == 0 {
		expirationMinutes = DefaultCodeExpirationMinutes
	}
	if length < CodeMinLength || length > CodeMaxLength {
		return entities.OperatorCode{}, ErrInvalidCodeLength
	}
	if expirationMinutes < 0 {
		return entities.OperatorCode{}, ErrInvalidCodeExpiration
	}

	now := time.Now().UTC()

	// The uniqueness constraint only excludes rows with a non-null
	// used_at, so merely-expired codes must be stamped too before the
	// insert can succeed.
	invalidated, err := u.repo.MarkAllUnusedUsed(ctx, operatorID, now)
	if err != nil {
		log.Printf("[code][usecase] invalidate-before-insert failed operator_id=%s err=%v", operatorID, err)
		return entities.OperatorCode{}, err
	}
	for _, old := range invalidated {
		u.publishUsed(ctx, old, now)
	}

	value, err := randomNumericCode(length)
	if err != nil {
		log.Printf("[code][usecase] random code generation failed operator_id=%s err=%v", operatorID, err)
		return entities.OperatorCode{}, ErrCodeGeneration
	}

	id, err := u.repo.NextID(ctx, operatorID)
	if err != nil {
		return entities.OperatorCode{}, err
	}

	code := entities.OperatorCode{
		ID:         id,
		OperatorID: operatorID,
		Code:       value,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(expirationMinutes) * time.Minute),
	}

	err = u.repo.InsertUnused(ctx, code)
	if errors.Is(err, interfaces.ErrActiveCodeExists) {
		// Race: a concurrent caller claimed the slot first. Adopt the
		// winner's code instead of erroring.
		if winner, ok := u.adoptWinner(ctx, operatorID); ok {
			return winner, nil
		}
		// No live code behind the claim: a writer died between stamping
		// its code and releasing the slot. Heal the lock and retry once.
		released, healErr := u.repo.ReleaseStaleSlot(ctx, operatorID)
		if healErr == nil && released {
			log.Printf("[code][usecase] released stale slot operator_id=%s", operatorID)
			err = u.repo.InsertUnused(ctx, code)
			if errors.Is(err, interfaces.ErrActiveCodeExists) {
				if winner, ok := u.adoptWinner(ctx, operatorID); ok {
					return winner, nil
				}
			}
		}
	}
	if err != nil {
		log.Printf("[code][usecase] insert failed operator_id=%s err=%v", operatorID, err)
		return entities.OperatorCode{}, err
	}

	u.publish(ctx, interfaces.CodeEvent{OperatorID: operatorID, New: code})
	log.Printf("[code][usecase] generated operator_id=%s code_id=%d expires_at=%s", operatorID, code.ID, code.ExpiresAt.Format(time.RFC3339))
	return code, nil
}

// adoptWinner re-reads the active code after a lost insert race.
func (u *OperatorCodeUseCase) adoptWinner(ctx context.Context, operatorID string) (entities.OperatorCode, bool) {
	winner, err := u.repo.GetActive(ctx, operatorID, time.Now().UTC())
	if err != nil || winner.ID == 0 {
		return entities.OperatorCode{}, false
	}
	log.Printf("[code][usecase] lost generation race, adopting winner operator_id=%s code_id=%d", operatorID, winner.ID)
	return winner, true
}

func (u *OperatorCodeUseCase) InvalidateCode(ctx context.Context, operatorID string, codeID int64) error {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return ErrInvalidOperatorID
	}
	if codeID <= 0 {
		return ErrInvalidCodeID
	}

	old, err := u.repo.GetByID(ctx, operatorID, codeID)
	if err != nil {
		return err
	}
	if old.ID == 0 {
		return ErrCodeNotFound
	}
	if old.UsedAt != nil {
		return nil
	}

	now := time.Now().UTC()
	if err := u.repo.MarkUsed(ctx, operatorID, codeID, now); err != nil {
		return err
	}
	u.publishUsed(ctx, old, now)
	return nil
}

func (u *OperatorCodeUseCase) ValidateCode(ctx context.Context, code string) (bool, error) {
	match, err := u.ResolveValidCode(ctx, code)
	if err != nil {
		return false, err
	}
	return match.ID != 0, nil
}

func (u *OperatorCodeUseCase) ResolveValidCode(ctx context.Context, code string) (entities.OperatorCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.OperatorCode{}, nil
	}
	return u.repo.FindValidByCode(ctx, code, time.Now().UTC())
}

func (u *OperatorCodeUseCase) ListCodes(ctx context.Context, operatorID string) ([]entities.OperatorCode, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return nil, ErrInvalidOperatorID
	}
	return u.repo.ListByOperator(ctx, operatorID)
}

func (u *OperatorCodeUseCase) publishUsed(ctx context.Context, old entities.OperatorCode, usedAt time.Time) {
	updated := old
	updated.UsedAt = &usedAt
	u.publish(ctx, interfaces.CodeEvent{OperatorID: old.OperatorID, Old: old, New: updated})
}

// publish is best-effort: a dropped notification degrades the dashboard
// to its reload fallback, it never fails the mutation that caused it.
func (u *OperatorCodeUseCase) publish(ctx context.Context, ev interfaces.CodeEvent) {
	if u.bus == nil {
		return
	}
	if err := u.bus.Publish(ctx, ev); err != nil {
		log.Printf("[code][usecase] event publish failed operator_id=%s code_id=%d err=%v", ev.OperatorID, ev.New.ID, err)
	}
}

// randomNumericCode draws a uniform n-digit number (no leading zero).
func randomNumericCode(length int) (string, error) {
	min := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, new(big.Int).Sub(max, min))
	if err != nil {
		return "", err
	}
	return n.Add(n, min).String(), nil
}
