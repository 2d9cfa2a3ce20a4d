package repository

import (
	"context"
	"errors"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const usersEmailIndex = "email-index"

type userItem struct {
	ID                string `dynamodbav:"id"`
	Username          string `dynamodbav:"username"`
	Email             string `dynamodbav:"email"`
	GatewayCustomerID string `dynamodbav:"gateway_customer_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	it := toUserItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// SetGatewayCustomerID writes the provider customer reference once. A
// concurrent writer winning the race is not an error: the condition failure
// means the reference is already set and the stored value stays untouched.
func (r *UserDynamoRepository) SetGatewayCustomerID(ctx context.Context, userID, customerID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET #gcid = :cid"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#gcid)"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#gcid": "gateway_customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil
		}
		return err
	}
	return nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		GatewayCustomerID: u.GatewayCustomerID,
		CreatedAt:         u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.User{
		ID:                it.ID,
		Username:          it.Username,
		Email:             it.Email,
		GatewayCustomerID: it.GatewayCustomerID,
		CreatedAt:         createdAt,
	}
}
