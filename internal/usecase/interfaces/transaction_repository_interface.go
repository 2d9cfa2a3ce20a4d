package interfaces

import (
	"context"

	"payment_gateway/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// The table is insert-only in this flow: there is no update or delete.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Transaction, error)
}
