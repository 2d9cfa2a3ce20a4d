package repository

import (
	"context"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const transactionsUserIDIndex = "user_id-index"

type transactionItem struct {
	ID              string  `dynamodbav:"id"`
	UserID          string  `dynamodbav:"user_id"`
	Amount          float64 `dynamodbav:"amount"`
	Currency        string  `dynamodbav:"currency"`
	GatewayChargeID string  `dynamodbav:"gateway_charge_id,omitempty"`
	CardLast4       string  `dynamodbav:"card_last4,omitempty"`
	CardBrand       string  `dynamodbav:"card_brand,omitempty"`
	Status          string  `dynamodbav:"status"`
	Description     string  `dynamodbav:"description,omitempty"`
	ErrorMessage    string  `dynamodbav:"error_message,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The table is insert-only: rows are never updated or deleted.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client, tableName string) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:              t.ID,
		UserID:          t.UserID,
		Amount:          t.Amount,
		Currency:        t.Currency,
		GatewayChargeID: t.GatewayChargeID,
		CardLast4:       t.CardLast4,
		CardBrand:       t.CardBrand,
		Status:          string(t.Status),
		Description:     t.Description,
		ErrorMessage:    t.ErrorMessage,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Transaction{
		ID:              it.ID,
		UserID:          it.UserID,
		Amount:          it.Amount,
		Currency:        it.Currency,
		GatewayChargeID: it.GatewayChargeID,
		CardLast4:       it.CardLast4,
		CardBrand:       it.CardBrand,
		Status:          entities.TransactionStatus(it.Status),
		Description:     it.Description,
		ErrorMessage:    it.ErrorMessage,
		CreatedAt:       createdAt,
	}
}
