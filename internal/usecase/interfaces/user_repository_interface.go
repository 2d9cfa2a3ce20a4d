package interfaces

import (
	"context"

	"payment_gateway/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// SetGatewayCustomerID writes the provider customer reference exactly once:
// implementations must leave an already-set reference untouched.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	SetGatewayCustomerID(ctx context.Context, userID, customerID string) error
}
