package interfaces

import (
	"context"
	"encoding/json"
)

// InvoiceRequest describes one sale to invoice through the external
// accounting provider.
type InvoiceRequest struct {
	DocumentType   string
	DocumentNumber string
	Name           string
	LastName       string
	Email          string
	Address        string
	Phone          string

	Hours        int
	Minutes      int
	ServiceValue float64
}

// InvoiceReference is the provider's handle for an issued invoice.
type InvoiceReference struct {
	Number string
	Raw    json.RawMessage
}

// IInvoiceGateway abstracts the external invoicing provider (Siigo).
//
// IssueInvoice is called once per successful sale; its failure must not
// roll the sale back. Authentication is the gateway's own concern
// (token cached until expiry, re-authenticated transparently).

type IInvoiceGateway interface {
	IssueInvoice(ctx context.Context, req InvoiceRequest) (InvoiceReference, error)
}
