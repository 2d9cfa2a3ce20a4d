package routes

import (
	"log"

	_ "payment_gateway/docs"
	"payment_gateway/internal/adapter/http/handlers"
	"payment_gateway/internal/adapter/persistence/repository"
	"payment_gateway/internal/infrastructure/config"
	"payment_gateway/internal/infrastructure/database"
	"payment_gateway/internal/infrastructure/payments"
	"payment_gateway/internal/usecase"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	userRepo := repository.NewUserDynamoRepository(ddb, cfg.UsersTable)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb, cfg.TransactionsTable)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(cfg.StripeSecretKey)
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	paymentUseCase := usecase.NewPaymentProcessorUseCase(userRepo, transactionRepo, paymentGateway, cfg.Currency)
	userUseCase := usecase.NewUserUseCase(userRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	configHandler := handlers.NewConfigHandler(cfg)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, userHandler, configHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
