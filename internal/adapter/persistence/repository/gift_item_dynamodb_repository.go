package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// counterItemID is the reserved key holding the id sequence.
const counterItemID = 0

type giftItemRecord struct {
	ID           int64   `dynamodbav:"id"`
	Category     *string `dynamodbav:"categoria,omitempty"`
	Name         string  `dynamodbav:"nome"`
	Description  string  `dynamodbav:"descricao"`
	Price        float64 `dynamodbav:"valor"`
	PurchaseLink string  `dynamodbav:"link_compra"`
	Purchased    bool    `dynamodbav:"comprado"`
}

// GiftItemDynamoRepository persists GiftItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// The item with id 0 is a counter ("seq") used when the caller does not
// choose an id; it is never returned by List.

type GiftItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGiftItemRepository = (*GiftItemDynamoRepository)(nil)

func NewGiftItemDynamoRepository(ddb *dynamodb.Client, tableName string) *GiftItemDynamoRepository {
	return &GiftItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *GiftItemDynamoRepository) List(ctx context.Context) ([]entities.GiftItem, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#id > :counter"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":counter": numberValue(counterItemID),
		},
	})

	items := make([]entities.GiftItem, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec giftItemRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			items = append(items, fromGiftItemRecord(rec))
		}
	}
	return items, nil
}

func (r *GiftItemDynamoRepository) GetByID(ctx context.Context, id int64) (entities.GiftItem, error) {
	if id == counterItemID {
		return entities.GiftItem{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            giftItemKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GiftItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.GiftItem{}, nil
	}

	var rec giftItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.GiftItem{}, err
	}
	return fromGiftItemRecord(rec), nil
}

// counterRetries bounds how many generated ids Create tries when the counter
// lands on an id that is already taken.
const counterRetries = 3

// Create stores the item. A caller-chosen id raises the counter so later
// generated ids start after it.
func (r *GiftItemDynamoRepository) Create(ctx context.Context, item entities.GiftItem) (entities.GiftItem, error) {
	if item.HasID() {
		if err := r.putNew(ctx, item); err != nil {
			return entities.GiftItem{}, err
		}
		if err := r.raiseCounter(ctx, item.ID); err != nil {
			return entities.GiftItem{}, err
		}
		return item, nil
	}

	var err error
	for attempt := 0; attempt < counterRetries; attempt++ {
		item.ID, err = r.nextID(ctx)
		if err != nil {
			return entities.GiftItem{}, err
		}
		err = r.putNew(ctx, item)
		if !isConditionalCheckFailed(err) {
			break
		}
	}
	if err != nil {
		return entities.GiftItem{}, err
	}
	return item, nil
}

func (r *GiftItemDynamoRepository) putNew(ctx context.Context, item entities.GiftItem) error {
	av, err := attributevalue.MarshalMap(toGiftItemRecord(item))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// raiseCounter sets seq to id unless it is already at or past it.
func (r *GiftItemDynamoRepository) raiseCounter(ctx context.Context, id int64) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 giftItemKey(counterItemID),
		UpdateExpression:    aws.String("SET #seq = :id"),
		ConditionExpression: aws.String("attribute_not_exists(#seq) OR #seq < :id"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": numberValue(id),
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return fmt.Errorf("raise counter: %w", err)
	}
	return nil
}

// UpdatePurchased only touches existing items; a missing id is a no-op,
// never an upsert.
func (r *GiftItemDynamoRepository) UpdatePurchased(ctx context.Context, id int64, purchased bool) error {
	if id == counterItemID {
		return nil
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 giftItemKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #comprado = :comprado"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#comprado": "comprado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":comprado": &types.AttributeValueMemberBOOL{Value: purchased},
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

func (r *GiftItemDynamoRepository) Delete(ctx context.Context, id int64) error {
	if id == counterItemID {
		return nil
	}

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       giftItemKey(id),
	})
	return err
}

func (r *GiftItemDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              giftItemKey(counterItemID),
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberValue(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}

	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("next id: counter attribute missing")
	}
	return strconv.ParseInt(seq.Value, 10, 64)
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func giftItemKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": numberValue(id),
	}
}

func numberValue(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

func toGiftItemRecord(g entities.GiftItem) giftItemRecord {
	return giftItemRecord{
		ID:           g.ID,
		Category:     g.Category,
		Name:         g.Name,
		Description:  g.Description,
		Price:        g.Price,
		PurchaseLink: g.PurchaseLink,
		Purchased:    g.Purchased,
	}
}

func fromGiftItemRecord(rec giftItemRecord) entities.GiftItem {
	return entities.GiftItem{
		ID:           rec.ID,
		Category:     rec.Category,
		Name:         rec.Name,
		Description:  rec.Description,
		Price:        rec.Price,
		PurchaseLink: rec.PurchaseLink,
		Purchased:    rec.Purchased,
	}
}
