package entities

import "time"

// CodeStatus is the derived display state of an operator code. It is
// computed from the timestamp fields and never persisted.

type CodeStatus string

const (
	CodeStatusNew     CodeStatus = "new"
	CodeStatusActive  CodeStatus = "active"
	CodeStatusExpired CodeStatus = "expired"
	CodeStatusUsed    CodeStatus = "used"
)

// Seconds after creation during which an unused, unexpired code reads as "new".
const codeNewWindowSeconds = 5

// OperatorCode is a short-lived numeric token an operator hands to a
// walk-in customer to bind the sale to that operator.
//
// Storage model (DynamoDB, operator_codes table):
//   - PK: operator_id (string)
//   - SK: id (number, per-operator sequence; 0 is reserved for the meta item)
//   - GSI code-index (PK: code)
//
// Invariant: at most one code per operator with UsedAt == nil. The store
// enforces it through a conditional claim on the operator's meta item;
// application code only pre-checks.
//
// UsedAt is set either by a consuming sale (SaleID also set) or when the
// code is superseded/invalidated (SaleID stays nil). Rows are never
// deleted.

type OperatorCode struct {
	ID         int64      `json:"id"`
	OperatorID string     `json:"operator_id"`
	Code       string     `json:"code"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	SaleID     *string    `json:"sale_id,omitempty"`
}

// Status derives the display state of the code at the given instant.
func (c OperatorCode) Status(now time.Time) CodeStatus {
	if c.UsedAt != nil {
		return CodeStatusUsed
	}
	if !c.ExpiresAt.After(now) {
		return CodeStatusExpired
	}
	if now.Sub(c.CreatedAt) < codeNewWindowSeconds*time.Second {
		return CodeStatusNew
	}
	return CodeStatusActive
}

// IsActive reports whether the code can still be redeemed: unused and unexpired.
func (c OperatorCode) IsActive(now time.Time) bool {
	return c.UsedAt == nil && c.ExpiresAt.After(now)
}

// MinutesRemaining returns whole minutes until expiry, floored at zero.
func (c OperatorCode) MinutesRemaining(now time.Time) int {
	remaining := c.ExpiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / time.Minute)
}

// IsExpiringSoon reports whether fewer than 5 minutes remain on a still-live code.
func (c OperatorCode) IsExpiringSoon(now time.Time) bool {
	m := c.MinutesRemaining(now)
	return m > 0 && m < 5
}
