package entities

import "time"

// Operator is an authenticated staff member who can generate codes and
// register in-person sales.
//
// Storage model (DynamoDB, operadores table):
//   - PK: id (string, uuid)
//   - GSI correo-index (PK: correo)

type Operator struct {
	ID           string    `json:"id"`
	Email        string    `json:"correo"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Phone        string    `json:"telefono,omitempty"`
	Active       bool      `json:"activo"`
	CreatedAt    time.Time `json:"creado_en"`
	UpdatedAt    time.Time `json:"actualizado_en"`
}

// OperatorSession is the opaque bearer session handed to the dashboard.
type OperatorSession struct {
	Operator     Operator  `json:"operator"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
