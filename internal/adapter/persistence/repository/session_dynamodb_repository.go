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

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	Token     string `dynamodbav:"token"`
	AdminID   string `dynamodbav:"admin_id"`
	ExpiresAt string `dynamodbav:"expires_at"`
	// Unix seconds for the table's TTL attribute, so DynamoDB reaps
	// tokens the auth layer never saw expire.
	TTL       int64  `dynamodbav:"ttl"`
	CreatedAt string `dynamodbav:"created_at"`
}

// SessionDynamoRepository stores admin bearer tokens in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//   - TTL attribute: ttl

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Put(ctx context.Context, s entities.Session) error {
	av, err := attributevalue.MarshalMap(sessionItem{
		Token:     s.Token,
		AdminID:   s.AdminID,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339Nano),
		TTL:       s.ExpiresAt.Unix(),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, token string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Session{
		Token:     it.Token,
		AdminID:   it.AdminID,
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}, nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	return err
}
