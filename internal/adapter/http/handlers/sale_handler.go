package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Pivvot-Consulting/billing-form/internal/adapter/http/dto/request"
	response "github.com/Pivvot-Consulting/billing-form/internal/adapter/http/dto/response"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
	"github.com/Pivvot-Consulting/billing-form/pkg"
)

var errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Invalid sale payload", http.StatusBadRequest)

// SaleHandler handles the public sale form and the operator dashboard
// sale reads.

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// RegisterSale handles the public sale form submission.
//
// @Summary      Register a sale
// @Description  Validates the operator code and the client form, persists the sale atomically and attempts invoice issuance.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        sale  body      request.RegisterSaleRequest  true  "Sale form"
// @Success      201   {object}  response.SaleReceiptResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /v1/sales [post]
func (h *SaleHandler) RegisterSale(c *gin.Context) {
	var payload request.RegisterSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	receipt, err := h.usecase.RegisterSale(c.Request.Context(), payload.ToInput(c.ClientIP(), c.Request.UserAgent()))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSaleReceipt(receipt))
}

// ListSales returns the authenticated operator's sales, newest first.
func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.usecase.ListSales(c.Request.Context(), OperatorID(c))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalesWithClients(sales))
}

// GetSale returns one sale, scoped to the authenticated operator.
func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetSale(c.Request.Context(), OperatorID(c), c.Param("id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSaleWithClient(sale))
}

// SalesStats returns the dashboard summary for the authenticated operator.
func (h *SaleHandler) SalesStats(c *gin.Context) {
	stats, err := h.usecase.SalesStats(c.Request.Context(), OperatorID(c))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalesStats(stats))
}

// UpdateInvoice attaches a manually issued invoice number to a sale.
func (h *SaleHandler) UpdateInvoice(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	sale, err := h.usecase.UpdateInvoiceNumber(c.Request.Context(), OperatorID(c), c.Param("id"), payload.InvoiceNumber)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUpdatedSale(sale))
}

func mapSaleError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewValidationError("Invalid sale form", verr.Fields, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidOrExpiredCode):
		return pkg.NewDomainErrorSimple("INVALID_OR_EXPIRED_CODE", "The operator code is invalid or expired", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSalePersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "The sale could not be recorded", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidInvoiceNumber), errors.Is(err, usecase.ErrInvalidOperatorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UNKNOWN_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
