package interfaces

import (
	"context"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

// CodeEvent is one mutation of an operator_codes row, carrying the row
// before and after the change so subscribers can classify the transition
// without extra reads.
type CodeEvent struct {
	OperatorID string                `json:"operator_id"`
	Old        entities.OperatorCode `json:"old"`
	New        entities.OperatorCode `json:"new"`
}

// Consumed reports whether this event is a genuine consumption:
// used_at transitioned from null to non-null. Everything else (fresh
// inserts, timestamp refreshes) is mirrored as-is by subscribers.
func (e CodeEvent) Consumed() bool {
	return e.Old.UsedAt == nil && e.New.UsedAt != nil
}

// ICodeSubscription is a live event feed for one operator's codes.
// After Close returns no further events are delivered and Events is
// closed.
type ICodeSubscription interface {
	Events() <-chan CodeEvent
	Close() error
}

// ICodeEventBus propagates operator_codes mutations between the service
// and every dashboard session (including other tabs/devices of the same
// operator).

type ICodeEventBus interface {
	Publish(ctx context.Context, event CodeEvent) error
	Subscribe(ctx context.Context, operatorID string) (ICodeSubscription, error)
}
