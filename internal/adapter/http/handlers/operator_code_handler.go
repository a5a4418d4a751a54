package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "github.com/Pivvot-Consulting/billing-form/internal/adapter/http/dto/request"
	response "github.com/Pivvot-Consulting/billing-form/internal/adapter/http/dto/response"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
	"github.com/Pivvot-Consulting/billing-form/pkg"
)

var errInvalidCodePayload = pkg.NewDomainErrorSimple("INVALID_CODE_INPUT", "Invalid code payload", http.StatusBadRequest)

// OperatorCodeHandler handles the operator-code lifecycle endpoints:
// dashboard reads and generation, plus the public validation check.

type OperatorCodeHandler struct {
	usecase usecase.IOperatorCodeUseCase
}

func NewOperatorCodeHandler(uc usecase.IOperatorCodeUseCase) *OperatorCodeHandler {
	return &OperatorCodeHandler{usecase: uc}
}

// GetActiveCode returns the operator's current code, generating one when
// none exists so the dashboard always has something to show.
func (h *OperatorCodeHandler) GetActiveCode(c *gin.Context) {
	code, err := h.usecase.GetOrCreateActiveCode(c.Request.Context(), OperatorID(c))
	if err != nil {
		appErr := mapCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperatorCode(code))
}

// GenerateCode invalidates the operator's unused codes and issues a
// fresh one.
//
// @Summary      Generate an operator code
// @Tags         codes
// @Accept       json
// @Produce      json
// @Param        params  body      request.GenerateCodeRequest  false  "Generation parameters"
// @Success      201     {object}  response.OperatorCodeResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /v1/operator/codes [post]
func (h *OperatorCodeHandler) GenerateCode(c *gin.Context) {
	var payload request.GenerateCodeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidCodePayload.HTTPStatus, errInvalidCodePayload.ToHTTPError())
			return
		}
	}

	code, err := h.usecase.GenerateCode(c.Request.Context(), OperatorID(c), payload.Length, payload.ExpirationMinutes)
	if err != nil {
		appErr := mapCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOperatorCode(code))
}

// ListCodes returns the operator's code history, newest first.
func (h *OperatorCodeHandler) ListCodes(c *gin.Context) {
	codes, err := h.usecase.ListCodes(c.Request.Context(), OperatorID(c))
	if err != nil {
		appErr := mapCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperatorCodes(codes))
}

// InvalidateCode marks one code as used. Idempotent: invalidating an
// already-used code succeeds.
func (h *OperatorCodeHandler) InvalidateCode(c *gin.Context) {
	codeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || codeID <= 0 {
		c.JSON(errInvalidCodePayload.HTTPStatus, errInvalidCodePayload.ToHTTPError())
		return
	}

	if err := h.usecase.InvalidateCode(c.Request.Context(), OperatorID(c), codeID); err != nil {
		appErr := mapCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ValidateCode is the public pre-check used by the sale form. It never
// consumes the code and never reveals anything beyond the boolean.
//
// @Summary      Validate an operator code
// @Tags         codes
// @Accept       json
// @Produce      json
// @Param        code  body      request.ValidateCodeRequest  true  "Code to check"
// @Success      200   {object}  response.CodeValidationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /v1/codes/validate [post]
func (h *OperatorCodeHandler) ValidateCode(c *gin.Context) {
	var payload request.ValidateCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCodePayload.HTTPStatus, errInvalidCodePayload.ToHTTPError())
		return
	}

	valid, err := h.usecase.ValidateCode(c.Request.Context(), payload.Normalized())
	if err != nil {
		appErr := mapCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CodeValidationResponse{Valid: valid})
}

func mapCodeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOperatorID),
		errors.Is(err, usecase.ErrInvalidCodeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCodeLength),
		errors.Is(err, usecase.ErrInvalidCodeExpiration):
		return pkg.NewDomainError("GENERATION_ERROR", "Invalid code generation parameters", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCodeNotFound):
		return pkg.NewDomainErrorSimple("CODE_NOT_FOUND", "Operator code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCodeGeneration):
		return pkg.NewDomainError("GENERATION_ERROR", "The code could not be generated", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("UNKNOWN_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
