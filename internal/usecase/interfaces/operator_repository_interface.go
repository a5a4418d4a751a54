package interfaces

import (
	"context"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

// IOperatorRepository abstracts DynamoDB persistence for operator
// accounts. Lookups return a zero-value operator (ID == "") when nothing
// matches.

type IOperatorRepository interface {
	GetByID(ctx context.Context, id string) (entities.Operator, error)
	GetByEmail(ctx context.Context, email string) (entities.Operator, error)
}
