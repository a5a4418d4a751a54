package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

// ErrActiveCodeExists is returned by InsertUnused when the store's
// single-unused-code constraint rejects the insert. Callers treat it as
// "another caller already created one" and re-read the winner.
var ErrActiveCodeExists = errors.New("an unused code already exists for this operator")

// IOperatorCodeRepository abstracts DynamoDB persistence for OperatorCode.
//
// The store owns the correctness of the "at most one unused code per
// operator" invariant; the methods here expose it as conditional
// operations. Lookups return a zero-value code (ID == 0) when nothing
// matches.

type IOperatorCodeRepository interface {
	// NextID reserves the next per-operator code id.
	NextID(ctx context.Context, operatorID string) (int64, error)

	// InsertUnused writes a fresh unused code and claims the operator's
	// active slot in one atomic step. Fails with ErrActiveCodeExists when
	// the slot is already held.
	InsertUnused(ctx context.Context, code entities.OperatorCode) error

	// GetActive returns the operator's unused, unexpired code, newest first.
	GetActive(ctx context.Context, operatorID string, now time.Time) (entities.OperatorCode, error)

	GetByID(ctx context.Context, operatorID string, id int64) (entities.OperatorCode, error)

	// ListByOperator returns every code for the operator, newest first.
	ListByOperator(ctx context.Context, operatorID string) ([]entities.OperatorCode, error)

	// FindValidByCode resolves a literal code string to its row iff the row
	// is unused and unexpired at the given instant.
	FindValidByCode(ctx context.Context, code string, now time.Time) (entities.OperatorCode, error)

	// MarkAllUnusedUsed stamps used_at on every unused code for the
	// operator (expired ones included), releasing the active slot per
	// stamped code. Returns the codes it invalidated.
	MarkAllUnusedUsed(ctx context.Context, operatorID string, now time.Time) ([]entities.OperatorCode, error)

	// MarkUsed stamps used_at on one code and releases the slot. Idempotent:
	// marking an already-used code is not an error.
	MarkUsed(ctx context.Context, operatorID string, id int64, now time.Time) error

	// ReleaseStaleSlot frees the active slot when its holder is already
	// used or missing (a writer died between stamp and release). A slot
	// held by a live unused code is untouched. Reports whether a lock
	// was released.
	ReleaseStaleSlot(ctx context.Context, operatorID string) (bool, error)
}
