package interfaces

import (
	"context"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

// ISessionStore holds opaque bearer sessions for authenticated
// operators. Lookups return a zero-value session when the token is
// unknown or expired.

type ISessionStore interface {
	Save(ctx context.Context, session entities.OperatorSession) error
	GetByAccessToken(ctx context.Context, token string) (entities.OperatorSession, error)
	GetByRefreshToken(ctx context.Context, token string) (entities.OperatorSession, error)
	Delete(ctx context.Context, accessToken string) error
}
