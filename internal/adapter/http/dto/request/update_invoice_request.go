package request

// UpdateInvoiceRequest attaches a manually issued invoice number to a
// sale from the operator dashboard.
type UpdateInvoiceRequest struct {
	InvoiceNumber string `json:"numero_factura" binding:"required"`
}
