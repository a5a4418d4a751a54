package interfaces

import (
	"context"
	"errors"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

// ErrCodeAlreadyConsumed is returned by CreateCompleteSale when the
// operator code was consumed between validation and the transaction
// commit. Nothing is persisted in that case.
var ErrCodeAlreadyConsumed = errors.New("operator code was already consumed")

// CreateSaleCommand carries exactly the fields the atomic sale
// transaction accepts, validated at the boundary before any domain logic
// runs.
type CreateSaleCommand struct {
	CodeOperatorID string
	CodeID         int64

	DocumentType   string
	DocumentNumber string
	Name           string
	LastName       string
	Email          string
	Address        string
	Phone          string

	ServiceTimeMinutes int
	TotalValue         float64
	GenerateInvoice    bool

	AcceptsTerms   bool
	AcceptsPrivacy bool
	TermsVersion   string
	PrivacyVersion string
	IP             string
	UserAgent      string

	MarketingAnswers map[string]string
}

// CreateSaleResult identifies the rows created by one sale transaction.
type CreateSaleResult struct {
	SaleID       string
	ClientID     string
	OperatorID   string
	AcceptanceID string
}

// ISaleRepository abstracts DynamoDB persistence for the sale aggregate.
//
// CreateCompleteSale must be atomic: client + sale + acceptance
// (+ marketing answers) are written and the operator code is consumed as
// one unit, all rows or none.

type ISaleRepository interface {
	CreateCompleteSale(ctx context.Context, cmd CreateSaleCommand) (CreateSaleResult, error)
	GetByID(ctx context.Context, id string) (entities.SaleWithClient, error)
	ListByOperator(ctx context.Context, operatorID string) ([]entities.SaleWithClient, error)
	UpdateInvoice(ctx context.Context, saleID, invoiceNumber string, status entities.InvoiceStatus) (entities.Sale, error)
}
