package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
)

var (
	ErrInvalidOrExpiredCode = errors.New("operator code is invalid or expired")
	ErrSalePersistence      = errors.New("sale could not be persisted")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrInvalidSaleID        = errors.New("invalid sale id")
	ErrInvalidInvoiceNumber = errors.New("invalid invoice number")
)

// ValidationError aggregates every violated form field into one failure,
// never the first-only.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid sale form: " + strings.Join(e.Fields, "; ")
}

// RegisterSaleInput is the client form plus the operator code binding
// the sale to an operator.
type RegisterSaleInput struct {
	OperatorCode string `validate:"required"`

	DocumentType   string `validate:"required,oneof=CC Pasaporte NIT"`
	DocumentNumber string `validate:"required,number"`
	Name           string `validate:"required,min=2,max=50"`
	LastName       string `validate:"required,min=2,max=50"`
	Email          string `validate:"required,email"`
	Address        string `validate:"required,min=5"`
	Phone          string `validate:"required,len=10,number"`

	Hours        int     `validate:"min=0"`
	Minutes      int     `validate:"min=0"`
	ServiceValue float64 `validate:"gt=0"`

	GenerateInvoice bool
	IP              string
	UserAgent       string
	Marketing       map[string]string
}

// SaleReceipt references the rows created by one registration, plus the
// invoicing outcome. InvoiceWarning is set when issuance failed after
// the sale was already durable.
type SaleReceipt struct {
	SaleID         string                 `json:"sale_id"`
	ClientID       string                 `json:"client_id"`
	OperatorID     string                 `json:"operator_id"`
	AcceptanceID   string                 `json:"acceptance_id"`
	InvoiceStatus  entities.InvoiceStatus `json:"invoice_status"`
	InvoiceNumber  string                 `json:"invoice_number,omitempty"`
	InvoiceWarning string                 `json:"invoice_warning,omitempty"`
}

// ISaleUseCase exposes sale registration and the operator dashboard reads.

type ISaleUseCase interface {
	// RegisterSale runs the sale registration transaction: validate the
	// operator code, validate the form, persist client+sale+acceptance
	// atomically (consuming the code), then attempt invoice issuance as a
	// best-effort step whose failure does not fail the registration.
	RegisterSale(ctx context.Context, in RegisterSaleInput) (SaleReceipt, error)

	ListSales(ctx context.Context, operatorID string) ([]entities.SaleWithClient, error)
	GetSale(ctx context.Context, operatorID, saleID string) (entities.SaleWithClient, error)
	SalesStats(ctx context.Context, operatorID string) (entities.SalesStats, error)

	// UpdateInvoiceNumber attaches a manually issued invoice to a sale.
	UpdateInvoiceNumber(ctx context.Context, operatorID, saleID, invoiceNumber string) (entities.Sale, error)
}

type SaleUseCase struct {
	repo     interfaces.ISaleRepository
	codes    IOperatorCodeUseCase
	gateway  interfaces.IInvoiceGateway
	bus      interfaces.ICodeEventBus
	validate *validator.Validate
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(repo interfaces.ISaleRepository, codes IOperatorCodeUseCase, gateway interfaces.IInvoiceGateway, bus interfaces.ICodeEventBus) *SaleUseCase {
	return &SaleUseCase{
		repo:     repo,
		codes:    codes,
		gateway:  gateway,
		bus:      bus,
		validate: validator.New(),
	}
}

func (u *SaleUseCase) RegisterSale(ctx context.Context, in RegisterSaleInput) (SaleReceipt, error) {
	in.OperatorCode = strings.TrimSpace(in.OperatorCode)
	in.Phone = strings.ReplaceAll(in.Phone, " ", "")

	log.Printf("[sale][usecase] register start code=%q", in.OperatorCode)

	code, err := u.codes.ResolveValidCode(ctx, in.OperatorCode)
	if err != nil {
		return SaleReceipt{}, err
	}
	if code.ID == 0 {
		log.Printf("[sale][usecase] code rejected code=%q", in.OperatorCode)
		return SaleReceipt{}, ErrInvalidOrExpiredCode
	}

	if verr := u.validateForm(in); verr != nil {
		log.Printf("[sale][usecase] form rejected violations=%d", len(verr.Fields))
		return SaleReceipt{}, verr
	}

	minutes := entities.ServiceTimeInMinutes(in.Hours, in.Minutes)

	cmd := interfaces.CreateSaleCommand{
		CodeOperatorID:     code.OperatorID,
		CodeID:             code.ID,
		DocumentType:       in.DocumentType,
		DocumentNumber:     in.DocumentNumber,
		Name:               strings.TrimSpace(in.Name),
		LastName:           strings.TrimSpace(in.LastName),
		Email:              strings.TrimSpace(in.Email),
		Address:            strings.TrimSpace(in.Address),
		Phone:              in.Phone,
		ServiceTimeMinutes: minutes,
		TotalValue:         in.ServiceValue,
		GenerateInvoice:    in.GenerateInvoice,
		AcceptsTerms:       true,
		AcceptsPrivacy:     true,
		TermsVersion:       entities.TermsVersion,
		PrivacyVersion:     entities.PrivacyVersion,
		IP:                 in.IP,
		UserAgent:          in.UserAgent,
		MarketingAnswers:   in.Marketing,
	}

	result, err := u.repo.CreateCompleteSale(ctx, cmd)
	if err != nil {
		if errors.Is(err, interfaces.ErrCodeAlreadyConsumed) {
			// Lost the race between validation and commit; nothing was
			// persisted, the caller can re-enter a fresh code.
			log.Printf("[sale][usecase] code consumed mid-flight code_id=%d", code.ID)
			return SaleReceipt{}, ErrInvalidOrExpiredCode
		}
		log.Printf("[sale][usecase] persistence failed code_id=%d err=%v", code.ID, err)
		return SaleReceipt{}, fmt.Errorf("%w: %v", ErrSalePersistence, err)
	}
	log.Printf("[sale][usecase] persisted sale_id=%s client_id=%s acceptance_id=%s", result.SaleID, result.ClientID, result.AcceptanceID)

	u.publishConsumed(ctx, code, result.SaleID)

	receipt := SaleReceipt{
		SaleID:        result.SaleID,
		ClientID:      result.ClientID,
		OperatorID:    result.OperatorID,
		AcceptanceID:  result.AcceptanceID,
		InvoiceStatus: entities.InvoiceStatusPendiente,
	}

	if in.GenerateInvoice {
		u.issueInvoice(ctx, in, &receipt)
	}

	log.Printf("[sale][usecase] register success sale_id=%s invoice_status=%s", receipt.SaleID, receipt.InvoiceStatus)
	return receipt, nil
}

// issueInvoice is the best-effort paperwork step. The sale is already
// durable; any failure here is downgraded to a warning on the receipt.
func (u *SaleUseCase) issueInvoice(ctx context.Context, in RegisterSaleInput, receipt *SaleReceipt) {
	if u.gateway == nil {
		log.Printf("[sale][usecase] invoice gateway not configured sale_id=%s", receipt.SaleID)
		receipt.InvoiceStatus = entities.InvoiceStatusError
		receipt.InvoiceWarning = "invoicing is not configured; the sale was recorded"
		return
	}

	ref, err := u.gateway.IssueInvoice(ctx, interfaces.InvoiceRequest{
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Name:           strings.TrimSpace(in.Name),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.TrimSpace(in.Email),
		Address:        strings.TrimSpace(in.Address),
		Phone:          in.Phone,
		Hours:          in.Hours,
		Minutes:        in.Minutes,
		ServiceValue:   in.ServiceValue,
	})
	if err != nil {
		log.Printf("[sale][usecase] invoice issuance failed sale_id=%s err=%v", receipt.SaleID, err)
		receipt.InvoiceStatus = entities.InvoiceStatusError
		receipt.InvoiceWarning = "the invoice could not be issued; the sale was recorded"
		if _, uerr := u.repo.UpdateInvoice(ctx, receipt.SaleID, "", entities.InvoiceStatusError); uerr != nil {
			log.Printf("[sale][usecase] invoice status update failed sale_id=%s err=%v", receipt.SaleID, uerr)
		}
		return
	}

	receipt.InvoiceStatus = entities.InvoiceStatusGenerada
	receipt.InvoiceNumber = ref.Number
	if _, uerr := u.repo.UpdateInvoice(ctx, receipt.SaleID, ref.Number, entities.InvoiceStatusGenerada); uerr != nil {
		log.Printf("[sale][usecase] invoice number update failed sale_id=%s err=%v", receipt.SaleID, uerr)
	}
	log.Printf("[sale][usecase] invoice issued sale_id=%s invoice_number=%s", receipt.SaleID, ref.Number)
}

func (u *SaleUseCase) publishConsumed(ctx context.Context, code entities.OperatorCode, saleID string) {
	if u.bus == nil {
		return
	}
	now := time.Now().UTC()
	consumed := code
	consumed.UsedAt = &now
	consumed.SaleID = &saleID
	ev := interfaces.CodeEvent{OperatorID: code.OperatorID, Old: code, New: consumed}
	if err := u.bus.Publish(ctx, ev); err != nil {
		log.Printf("[sale][usecase] consumption event publish failed code_id=%d err=%v", code.ID, err)
	}
}

func (u *SaleUseCase) validateForm(in RegisterSaleInput) *ValidationError {
	var fields []string

	if err := u.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &ValidationError{Fields: []string{err.Error()}}
		}
		for _, fe := range verrs {
			fields = append(fields, fieldViolation(fe))
		}
	}

	if n, err := strconv.ParseInt(in.DocumentNumber, 10, 64); err == nil && n <= 0 {
		fields = append(fields, "documentNumber must be greater than 0")
	}
	if entities.ServiceTimeInMinutes(in.Hours, in.Minutes) <= 0 {
		fields = append(fields, "service time must be greater than 0 minutes")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func fieldViolation(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s digits", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "number":
		return field + " must contain only digits"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func (u *SaleUseCase) ListSales(ctx context.Context, operatorID string) ([]entities.SaleWithClient, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return nil, ErrInvalidOperatorID
	}
	return u.repo.ListByOperator(ctx, operatorID)
}

func (u *SaleUseCase) GetSale(ctx context.Context, operatorID, saleID string) (entities.SaleWithClient, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return entities.SaleWithClient{}, ErrInvalidSaleID
	}

	sale, err := u.repo.GetByID(ctx, saleID)
	if err != nil {
		return entities.SaleWithClient{}, err
	}
	if sale.ID == "" || sale.OperatorID != operatorID {
		return entities.SaleWithClient{}, ErrSaleNotFound
	}
	return sale, nil
}

func (u *SaleUseCase) SalesStats(ctx context.Context, operatorID string) (entities.SalesStats, error) {
	sales, err := u.ListSales(ctx, operatorID)
	if err != nil {
		return entities.SalesStats{}, err
	}

	stats := entities.SalesStats{TotalSales: len(sales)}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, s := range sales {
		stats.TotalValue += s.TotalValue
		if !s.CreatedAt.UTC().Before(today) {
			stats.SalesToday++
		}
	}
	if stats.TotalSales > 0 {
		stats.AverageSale = stats.TotalValue / float64(stats.TotalSales)
	}
	return stats, nil
}

func (u *SaleUseCase) UpdateInvoiceNumber(ctx context.Context, operatorID, saleID, invoiceNumber string) (entities.Sale, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return entities.Sale{}, ErrInvalidInvoiceNumber
	}

	if _, err := u.GetSale(ctx, operatorID, saleID); err != nil {
		return entities.Sale{}, err
	}
	return u.repo.UpdateInvoice(ctx, saleID, invoiceNumber, entities.InvoiceStatusGenerada)
}
