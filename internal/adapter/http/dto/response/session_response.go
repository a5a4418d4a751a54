package response

import (
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

type OperatorResponse struct {
	ID       string `json:"id"`
	Email    string `json:"correo"`
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
}

type SessionResponse struct {
	Operator     OperatorResponse `json:"operator"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresAt    time.Time        `json:"expires_at"`
}

func FromSession(s entities.OperatorSession) SessionResponse {
	return SessionResponse{
		Operator: OperatorResponse{
			ID:       s.Operator.ID,
			Email:    s.Operator.Email,
			Name:     s.Operator.Name,
			LastName: s.Operator.LastName,
		},
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
	}
}
