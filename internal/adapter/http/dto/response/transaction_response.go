package response

import (
	"time"

	"payment_gateway/internal/domain/entities"
)

// TransactionResponse is the full persisted record of one payment attempt.
type TransactionResponse struct {
	TransactionID   string  `json:"transaction_id"`
	UserID          string  `json:"user_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	GatewayChargeID string  `json:"gateway_charge_id,omitempty"`
	CardLast4       string  `json:"card_last4,omitempty"`
	CardBrand       string  `json:"card_brand,omitempty"`
	Status          string  `json:"status"`
	Description     string  `json:"description,omitempty"`
	ErrorMessage    string  `json:"error_message,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.ID,
		UserID:          t.UserID,
		Amount:          t.Amount,
		Currency:        t.Currency,
		GatewayChargeID: t.GatewayChargeID,
		CardLast4:       t.CardLast4,
		CardBrand:       t.CardBrand,
		Status:          string(t.Status),
		Description:     t.Description,
		ErrorMessage:    t.ErrorMessage,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromTransactions(items []entities.Transaction) TransactionListResponse {
	out := TransactionListResponse{Transactions: make([]TransactionResponse, 0, len(items))}
	for _, t := range items {
		out.Transactions = append(out.Transactions, FromTransaction(t))
	}
	return out
}
