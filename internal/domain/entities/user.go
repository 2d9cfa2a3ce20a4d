package entities

import "time"

// User is the locally known identity a payment is charged against.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// GatewayCustomerID is the opaque customer reference assigned by the payment
// provider. It is empty until the first payment provisions a customer and is
// written exactly once after that.
type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	GatewayCustomerID string    `json:"gateway_customer_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
