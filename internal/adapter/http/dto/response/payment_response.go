package response

import (
	"time"

	"payment_gateway/internal/domain/entities"
)

// PaymentResponse is the outcome of one payment attempt as returned to the
// caller. Timestamp is RFC3339 (ISO-8601).
type PaymentResponse struct {
	TransactionID   string  `json:"transaction_id"`
	Status          string  `json:"status"`
	Message         string  `json:"message"`
	GatewayChargeID string  `json:"gateway_charge_id,omitempty"`
	Amount          float64 `json:"amount"`
	Timestamp       string  `json:"timestamp"`
}

func FromProcessedPayment(t entities.Transaction) PaymentResponse {
	msg := "Payment successful"
	if t.Status != entities.TransactionStatusSuccess {
		msg = t.ErrorMessage
		if msg == "" {
			msg = "Payment failed"
		}
	}

	return PaymentResponse{
		TransactionID:   t.ID,
		Status:          string(t.Status),
		Message:         msg,
		GatewayChargeID: t.GatewayChargeID,
		Amount:          t.Amount,
		Timestamp:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
