package request

import (
	"strings"

	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
)

// MarketingAnswersRequest mirrors the optional survey block of the
// public sale form.
type MarketingAnswersRequest struct {
	HowDidYouFindUs string `json:"como_nos_conocio,omitempty"`
	WouldReturn     string `json:"volveria,omitempty"`
	Comments        string `json:"comentarios,omitempty"`
}

// RegisterSaleRequest is the public sale form payload. Field-level
// validation lives in the use case so every violation is reported at
// once; binding here only enforces JSON shape.
type RegisterSaleRequest struct {
	OperatorCode string `json:"codigo_operador" binding:"required"`

	DocumentType   string `json:"tipo_documento" binding:"required"`
	DocumentNumber string `json:"numero_documento" binding:"required"`
	Name           string `json:"nombre" binding:"required"`
	LastName       string `json:"apellido" binding:"required"`
	Email          string `json:"correo" binding:"required"`
	Address        string `json:"direccion" binding:"required"`
	Phone          string `json:"celular" binding:"required"`

	Hours        int     `json:"horas"`
	Minutes      int     `json:"minutos"`
	ServiceValue float64 `json:"valor_servicio" binding:"required"`

	// Invoicing runs by default; only an explicit false skips it.
	GenerateInvoice *bool                    `json:"generar_factura"`
	Marketing       *MarketingAnswersRequest `json:"marketing,omitempty"`
}

// ToInput converts the payload into the use case input, attaching the
// request metadata captured for the acceptance record.
func (r RegisterSaleRequest) ToInput(ip, userAgent string) usecase.RegisterSaleInput {
	in := usecase.RegisterSaleInput{
		OperatorCode:    strings.TrimSpace(r.OperatorCode),
		DocumentType:    r.DocumentType,
		DocumentNumber:  strings.TrimSpace(r.DocumentNumber),
		Name:            r.Name,
		LastName:        r.LastName,
		Email:           r.Email,
		Address:         r.Address,
		Phone:           r.Phone,
		Hours:           r.Hours,
		Minutes:         r.Minutes,
		ServiceValue:    r.ServiceValue,
		GenerateInvoice: r.GenerateInvoice == nil || *r.GenerateInvoice,
		IP:              ip,
		UserAgent:       userAgent,
	}

	if r.Marketing != nil {
		answers := map[string]string{}
		if v := strings.TrimSpace(r.Marketing.HowDidYouFindUs); v != "" {
			answers["como_nos_conocio"] = v
		}
		if v := strings.TrimSpace(r.Marketing.WouldReturn); v != "" {
			answers["volveria"] = v
		}
		if v := strings.TrimSpace(r.Marketing.Comments); v != "" {
			answers["comentarios"] = v
		}
		if len(answers) > 0 {
			in.Marketing = answers
		}
	}
	return in
}
