package repository

import (
	"context"
	"time"

	"lista_presentes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type revokedTokenRecord struct {
	JTI       string `dynamodbav:"jti"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// RevokedTokenDynamoRepository stores logged-out token ids in DynamoDB.
//
// Table requirements:
//   - PK: jti (string)
//   - TTL attribute: expires_at (epoch seconds), so expired entries age out

type RevokedTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IRevokedTokenRepository = (*RevokedTokenDynamoRepository)(nil)

func NewRevokedTokenDynamoRepository(ddb *dynamodb.Client, tableName string) *RevokedTokenDynamoRepository {
	return &RevokedTokenDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *RevokedTokenDynamoRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	av, err := attributevalue.MarshalMap(revokedTokenRecord{JTI: tokenID, ExpiresAt: expiresAt.Unix()})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// IsRevoked checks the expiry itself because DynamoDB TTL deletion is lazy.
func (r *RevokedTokenDynamoRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"jti": &types.AttributeValueMemberS{Value: tokenID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var rec revokedTokenRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return false, err
	}
	return rec.ExpiresAt > r.now().Unix(), nil
}
