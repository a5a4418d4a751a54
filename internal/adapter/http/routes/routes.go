package routes

import (
	"log"
	"strconv"

	_ "github.com/Pivvot-Consulting/billing-form/docs" // This will be auto-generated
	"github.com/Pivvot-Consulting/billing-form/internal/adapter/http/handlers"
	repository2 "github.com/Pivvot-Consulting/billing-form/internal/adapter/persistence/repository"
	"github.com/Pivvot-Consulting/billing-form/internal/infrastructure/database"
	"github.com/Pivvot-Consulting/billing-form/internal/infrastructure/invoicing"
	"github.com/Pivvot-Consulting/billing-form/internal/infrastructure/pubsub"
	"github.com/Pivvot-Consulting/billing-form/internal/infrastructure/sessions"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := database.ConnectRedis()

	codeRepo := repository2.NewOperatorCodeDynamoRepository(ddb)
	saleRepo := repository2.NewSaleDynamoRepository(ddb)
	operatorRepo := repository2.NewOperatorDynamoRepository(ddb)

	codeBus := pubsub.NewRedisCodeBus(rdb)
	sessionStore := sessions.NewRedisSessionStore(rdb)

	var invoiceGateway interfaces.IInvoiceGateway
	siigoGateway, err := invoicing.NewSiigoGatewayFromEnv()
	if err != nil {
		log.Printf("Siigo gateway not configured: %v", err)
	} else {
		invoiceGateway = siigoGateway
	}

	codeUseCase := usecase.NewOperatorCodeUseCase(codeRepo, codeBus)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, codeUseCase, invoiceGateway, codeBus)
	authUseCase := usecase.NewAuthUseCase(operatorRepo, sessionStore)

	codeHandler := handlers.NewOperatorCodeHandler(codeUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	streamHandler := handlers.NewCodeStreamHandler(codeUseCase, codeBus)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addPublicBillingRoutes(v1, saleHandler, codeHandler)

	// Rutas del panel de operador
	operator := v1.Group("/operator")
	operator.Use(authRequired(authUseCase))
	addOperatorRoutes(operator, saleHandler, codeHandler, streamHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
