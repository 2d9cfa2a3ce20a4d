package request

// PaymentRequest is the inbound payload for processing one payment attempt.
//
// Amount is in major currency units (e.g. 50.00). PaymentToken is the
// one-time card token obtained by the frontend from the payment provider.
type PaymentRequest struct {
	UserID       string  `json:"user_id" binding:"required"`
	Amount       float64 `json:"amount"`
	PaymentToken string  `json:"payment_token" binding:"required"`
	Description  string  `json:"description"`
}
