package response

import (
	"time"

	"payment_gateway/internal/domain/entities"
)

type UserResponse struct {
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	GatewayCustomerID string `json:"gateway_customer_id,omitempty"`
	CreatedAt         string `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		UserID:            u.ID,
		Username:          u.Username,
		Email:             u.Email,
		GatewayCustomerID: u.GatewayCustomerID,
		CreatedAt:         u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ConfigResponse exposes the provider publishable key and sandbox tokens for
// demo frontends.
type ConfigResponse struct {
	PublishableKey string            `json:"publishable_key"`
	TestTokens     map[string]string `json:"test_tokens"`
}
