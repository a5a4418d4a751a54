package response

import (
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
)

type ClientResponse struct {
	ID             string `json:"id"`
	DocumentType   string `json:"tipo_documento"`
	DocumentNumber string `json:"numero_documento"`
	Name           string `json:"nombre"`
	LastName       string `json:"apellido"`
	Email          string `json:"correo"`
	Address        string `json:"direccion"`
	Phone          string `json:"celular"`
}

type SaleResponse struct {
	ID                 string         `json:"id"`
	OperatorID         string         `json:"operator_id"`
	ServiceTimeMinutes int            `json:"tiempo_servicio_min"`
	TotalValue         float64        `json:"valor_total"`
	GenerateInvoice    bool           `json:"generar_factura"`
	InvoiceNumber      string         `json:"numero_factura,omitempty"`
	InvoiceStatus      string         `json:"estado_factura"`
	CreatedAt          time.Time      `json:"creada_en"`
	UpdatedAt          time.Time      `json:"actualizada_en"`
	Client             ClientResponse `json:"cliente"`
}

func FromSaleWithClient(s entities.SaleWithClient) SaleResponse {
	return SaleResponse{
		ID:                 s.ID,
		OperatorID:         s.OperatorID,
		ServiceTimeMinutes: s.ServiceTimeMinutes,
		TotalValue:         s.TotalValue,
		GenerateInvoice:    s.GenerateInvoice,
		InvoiceNumber:      s.InvoiceNumber,
		InvoiceStatus:      string(s.InvoiceStatus),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		Client: ClientResponse{
			ID:             s.Client.ID,
			DocumentType:   s.Client.DocumentType,
			DocumentNumber: s.Client.DocumentNumber,
			Name:           s.Client.Name,
			LastName:       s.Client.LastName,
			Email:          s.Client.Email,
			Address:        s.Client.Address,
			Phone:          s.Client.Phone,
		},
	}
}

func FromSalesWithClients(sales []entities.SaleWithClient) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSaleWithClient(s))
	}
	return out
}

// SaleReceiptResponse acknowledges a registered sale to the public form.
type SaleReceiptResponse struct {
	SaleID         string `json:"venta_id"`
	InvoiceStatus  string `json:"estado_factura"`
	InvoiceNumber  string `json:"numero_factura,omitempty"`
	InvoiceWarning string `json:"advertencia_factura,omitempty"`
}

func FromSaleReceipt(r usecase.SaleReceipt) SaleReceiptResponse {
	return SaleReceiptResponse{
		SaleID:         r.SaleID,
		InvoiceStatus:  string(r.InvoiceStatus),
		InvoiceNumber:  r.InvoiceNumber,
		InvoiceWarning: r.InvoiceWarning,
	}
}

type SalesStatsResponse struct {
	TotalSales  int     `json:"total_ventas"`
	TotalValue  float64 `json:"valor_total"`
	SalesToday  int     `json:"ventas_hoy"`
	AverageSale float64 `json:"promedio_venta"`
}

func FromSalesStats(s entities.SalesStats) SalesStatsResponse {
	return SalesStatsResponse{
		TotalSales:  s.TotalSales,
		TotalValue:  s.TotalValue,
		SalesToday:  s.SalesToday,
		AverageSale: s.AverageSale,
	}
}

// UpdatedSaleResponse is the dashboard view after an invoice update.
type UpdatedSaleResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"numero_factura"`
	InvoiceStatus string    `json:"estado_factura"`
	UpdatedAt     time.Time `json:"actualizada_en"`
}

func FromUpdatedSale(s entities.Sale) UpdatedSaleResponse {
	return UpdatedSaleResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		InvoiceStatus: string(s.InvoiceStatus),
		UpdatedAt:     s.UpdatedAt,
	}
}
