package routes

import (
	"github.com/Pivvot-Consulting/billing-form/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSales = "/sales"
	PathCodes = "/codes"
)

// addPublicBillingRoutes mounts the endpoints the client-facing sale
// form calls without authentication.
func addPublicBillingRoutes(rg *gin.RouterGroup, saleHandler *handlers.SaleHandler, codeHandler *handlers.OperatorCodeHandler) {
	sales := rg.Group(PathSales)
	{
		sales.POST("", saleHandler.RegisterSale)
	}

	codes := rg.Group(PathCodes)
	{
		codes.POST("/validate", codeHandler.ValidateCode)
	}
}

// addOperatorRoutes mounts the authenticated dashboard endpoints.
func addOperatorRoutes(rg *gin.RouterGroup, saleHandler *handlers.SaleHandler, codeHandler *handlers.OperatorCodeHandler, streamHandler *handlers.CodeStreamHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("", saleHandler.ListSales)
		sales.GET("/stats", saleHandler.SalesStats)
		sales.GET("/:id", saleHandler.GetSale)
		sales.PATCH("/:id/invoice", saleHandler.UpdateInvoice)
	}

	codes := rg.Group(PathCodes)
	{
		codes.GET("", codeHandler.ListCodes)
		codes.POST("", codeHandler.GenerateCode)
		codes.GET("/active", codeHandler.GetActiveCode)
		codes.DELETE("/:id", codeHandler.InvalidateCode)
		codes.GET("/stream", streamHandler.Stream)
	}
}
