package response

import (
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

// OperatorCodeResponse is one code row plus the display fields the
// dashboard derives from the clock (status, remaining time).
type OperatorCodeResponse struct {
	ID               int64      `json:"id"`
	Code             string     `json:"codigo"`
	Status           string     `json:"estado"`
	MinutesRemaining int        `json:"minutos_restantes"`
	IsExpiringSoon   bool       `json:"por_expirar"`
	CreatedAt        time.Time  `json:"creado_en"`
	ExpiresAt        time.Time  `json:"expira_en"`
	UsedAt           *time.Time `json:"usado_en,omitempty"`
	SaleID           *string    `json:"venta_id,omitempty"`
}

func FromOperatorCode(c entities.OperatorCode) OperatorCodeResponse {
	now := time.Now().UTC()
	return OperatorCodeResponse{
		ID:               c.ID,
		Code:             c.Code,
		Status:           string(c.Status(now)),
		MinutesRemaining: c.MinutesRemaining(now),
		IsExpiringSoon:   c.IsExpiringSoon(now),
		CreatedAt:        c.CreatedAt,
		ExpiresAt:        c.ExpiresAt,
		UsedAt:           c.UsedAt,
		SaleID:           c.SaleID,
	}
}

func FromOperatorCodes(codes []entities.OperatorCode) []OperatorCodeResponse {
	out := make([]OperatorCodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, FromOperatorCode(c))
	}
	return out
}

// CodeValidationResponse is the public answer to "is this code
// redeemable right now". Nothing else leaks: no operator, no expiry.
type CodeValidationResponse struct {
	Valid bool `json:"valido"`
}
