package repository

import (
	"context"
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAdminsTableName = "admins"
	adminsUsernameIndex    = "username-index"
)

type adminItem struct {
	ID           string `dynamodbav:"id"`
	Username     string `dynamodbav:"username"`
	Name         string `dynamodbav:"name"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// AdminDynamoRepository persists back-office operators in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)

type AdminDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdminRepository = (*AdminDynamoRepository)(nil)

func NewAdminDynamoRepository(ddb *dynamodb.Client) *AdminDynamoRepository {
	return &AdminDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADMINS_TABLE", defaultAdminsTableName),
	}
}

func (r *AdminDynamoRepository) Create(ctx context.Context, a entities.Admin) (entities.Admin, error) {
	it := toAdminItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Admin{}, err
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
		return entities.Admin{}, err
	}
	return a, nil
}

func (r *AdminDynamoRepository) GetByID(ctx context.Context, id string) (entities.Admin, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Admin{}, err
	}
	if len(out.Item) == 0 {
		return entities.Admin{}, nil
	}

	var it adminItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Admin{}, err
	}
	return fromAdminItem(it), nil
}

func (r *AdminDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Admin, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(adminsUsernameIndex),
		KeyConditionExpression: aws.String("username = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Admin{}, err
	}
	if len(out.Items) == 0 {
		return entities.Admin{}, nil
	}

	var it adminItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Admin{}, err
	}
	return fromAdminItem(it), nil
}

func toAdminItem(a entities.Admin) adminItem {
	return adminItem{
		ID:           a.ID,
		Username:     a.Username,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAdminItem(it adminItem) entities.Admin {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Admin{
		ID:           it.ID,
		Username:     it.Username,
		Name:         it.Name,
		PasswordHash: it.PasswordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
