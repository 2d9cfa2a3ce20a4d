package routes

import (
	"payment_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments     = "/payments"
	PathTransactions = "/transactions"
	PathUsers        = "/users"
)

func addPaymentRoutes(
	rg *gin.RouterGroup,
	paymentHandler *handlers.PaymentHandler,
	userHandler *handlers.UserHandler,
	configHandler *handlers.ConfigHandler,
) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.ProcessPayment)
	}

	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("/:transaction_id", paymentHandler.GetTransaction)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:user_id", userHandler.GetUser)
		users.GET("/:user_id/transactions", paymentHandler.ListUserTransactions)
	}

	rg.GET("/config", configHandler.GetConfig)
}
