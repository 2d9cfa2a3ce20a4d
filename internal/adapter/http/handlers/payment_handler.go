package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payment_gateway/internal/adapter/http/dto/request"
	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/usecase"
	"payment_gateway/internal/usecase/interfaces"
	"payment_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment processing and the
// transaction read paths.

type PaymentHandler struct {
	usecase usecase.IPaymentProcessorUseCase
}

func NewPaymentHandler(uc usecase.IPaymentProcessorUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ProcessPayment charges a one-time token for a user and records the attempt.
// A declined card still returns 200: the decline shows up as status FAILED in
// the body, not as a server error.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] process start user_id=%s amount=%.2f", payload.UserID, payload.Amount)
	created, err := h.usecase.ProcessPayment(c.Request.Context(), usecase.ProcessPaymentCommand{
		UserID:       payload.UserID,
		Amount:       payload.Amount,
		PaymentToken: payload.PaymentToken,
		Description:  payload.Description,
	})
	if err != nil {
		log.Printf("[payment][handler] process failed user_id=%s err=%v", payload.UserID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process success user_id=%s transaction_id=%s status=%s", payload.UserID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromProcessedPayment(created))
}

// GetTransaction returns one persisted payment attempt by id.
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	t, err := h.usecase.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[payment][handler] get transaction failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// ListUserTransactions returns a user's payment attempts, newest first.
func (h *PaymentHandler) ListUserTransactions(c *gin.Context) {
	userID := c.Param("user_id")

	items, err := h.usecase.ListUserTransactions(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[payment][handler] list transactions failed user_id=%s err=%v", userID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(items))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidPaymentToken), errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrGatewayInvalidRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrGatewayRateLimited):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_RATE_LIMITED", "Payment provider rate limit reached", http.StatusTooManyRequests)
	case errors.Is(err, interfaces.ErrGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider authentication failed", err, http.StatusInternalServerError)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unreachable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
