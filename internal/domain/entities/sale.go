package entities

import "time"

// InvoiceStatus tracks the Siigo invoicing outcome for a sale.
//
// The sale itself is durable regardless of this status: invoicing is a
// best-effort follow-up step and its failure never rolls the sale back.

type InvoiceStatus string

const (
	InvoiceStatusPendiente InvoiceStatus = "pendiente"
	InvoiceStatusGenerada  InvoiceStatus = "generada"
	InvoiceStatusError     InvoiceStatus = "error"
	InvoiceStatusCancelada InvoiceStatus = "cancelada"
)

// Sale is a persisted rental/service transaction.
//
// Storage model (DynamoDB, ventas table):
//   - PK: id (string, uuid)
//   - GSI operator_id-index (PK: operator_id)

type Sale struct {
	ID                 string        `json:"id"`
	OperatorID         string        `json:"operator_id"`
	ClientID           string        `json:"cliente_id"`
	ServiceTimeMinutes int           `json:"tiempo_servicio_min"`
	TotalValue         float64       `json:"valor_total"`
	GenerateInvoice    bool          `json:"generar_factura"`
	InvoiceNumber      string        `json:"numero_factura,omitempty"`
	InvoiceStatus      InvoiceStatus `json:"estado_factura"`
	CreatedAt          time.Time     `json:"creada_en"`
	UpdatedAt          time.Time     `json:"actualizada_en"`
}

// Client is the customer identified on a sale.
type Client struct {
	ID             string    `json:"id"`
	DocumentType   string    `json:"tipo_documento"`
	DocumentNumber string    `json:"numero_documento"`
	Name           string    `json:"nombre"`
	LastName       string    `json:"apellido"`
	Email          string    `json:"correo"`
	Address        string    `json:"direccion"`
	Phone          string    `json:"celular"`
	CreatedAt      time.Time `json:"creado_en"`
}

// Acceptance records the legal consent captured at the moment of sale.
// A Sale never exists without one; both are written in the same
// transaction.
type Acceptance struct {
	ID             string    `json:"id"`
	SaleID         string    `json:"venta_id"`
	AcceptsTerms   bool      `json:"acepta_terminos"`
	AcceptsPrivacy bool      `json:"acepta_privacidad"`
	TermsVersion   string    `json:"version_terminos"`
	PrivacyVersion string    `json:"version_privacidad"`
	IP             string    `json:"ip,omitempty"`
	UserAgent      string    `json:"user_agent,omitempty"`
	CreatedAt      time.Time `json:"creado_en"`
}

// SaleWithClient is the dashboard listing projection.
type SaleWithClient struct {
	Sale
	Client Client `json:"cliente"`
}

// SalesStats summarizes an operator's sales for the dashboard.
type SalesStats struct {
	TotalSales  int     `json:"total_ventas"`
	TotalValue  float64 `json:"valor_total"`
	SalesToday  int     `json:"ventas_hoy"`
	AverageSale float64 `json:"promedio_venta"`
}

// Versions of the legal documents currently in force. Recorded on every
// acceptance so later revisions do not rewrite captured consent.
const (
	TermsVersion   = "v1.3"
	PrivacyVersion = "v1.0"
)
