package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
	pkgerrors "gardenbook/pkg/errors"
	"gardenbook/pkg/utils"
)

// GardenRepository implements the GardenRepository port using DynamoDB.
// Every write replaces the full item, which is what makes the registry's
// read-modify-write sequence safe under serialized calls.
type GardenRepository struct {
	client     *dynamodb.Client
	tableName  string
	ownerIndex string
	logger     *zap.Logger
}

// NewGardenRepository creates a new GardenRepository
func NewGardenRepository(client *dynamodb.Client, tableName, ownerIndex string, logger *zap.Logger) ports.GardenRepository {
	return &GardenRepository{
		client:     client,
		tableName:  tableName,
		ownerIndex: ownerIndex,
		logger:     logger,
	}
}

// gardenItem represents the DynamoDB item structure for a garden
type gardenItem struct {
	PK         string   `dynamodbav:"PK"`
	SK         string   `dynamodbav:"SK"`
	GSI1PK     string   `dynamodbav:"GSI1PK"` // owner partition for owner-scoped queries
	GSI1SK     string   `dynamodbav:"GSI1SK"`
	EntityType string   `dynamodbav:"EntityType"`
	GardenID   string   `dynamodbav:"GardenID"`
	Owner      string   `dynamodbav:"Owner"`
	Name       string   `dynamodbav:"Name"`
	Location   string   `dynamodbav:"Location"`
	Plants     []string `dynamodbav:"Plants"`
	Image      string   `dynamodbav:"Image"`
	CreatedAt  string   `dynamodbav:"CreatedAt"`
	UpdatedAt  *string  `dynamodbav:"UpdatedAt,omitempty"`
}

func gardenKey(id string) (string, string) {
	return fmt.Sprintf("GARDEN#%s", id), "METADATA"
}

// FindByID retrieves a garden by its ID
func (r *GardenRepository) FindByID(ctx context.Context, id valueobjects.GardenID) (*entities.Garden, error) {
	pk, sk := gardenKey(id.String())

	key, err := attributevalue.MarshalMap(map[string]string{"PK": pk, "SK": sk})
	if err != nil {
		return nil, pkgerrors.NewStoreReadError("get", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	})
	if err != nil {
		r.logger.Error("Failed to get garden from DynamoDB",
			zap.String("gardenID", id.String()),
			zap.Error(err),
		)
		return nil, pkgerrors.NewStoreReadError("get", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFoundError("garden", id.String())
	}

	return unmarshalGarden(out.Item)
}

// Save persists a garden, replacing the full item
func (r *GardenRepository) Save(ctx context.Context, garden *entities.Garden) error {
	item, err := marshalGarden(garden)
	if err != nil {
		return pkgerrors.NewStoreWriteError("insert", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		r.logger.Error("Failed to save garden to DynamoDB",
			zap.String("gardenID", garden.ID().String()),
			zap.Error(err),
		)
		return pkgerrors.NewStoreWriteError("insert", err)
	}

	return nil
}

// Delete removes a garden from the store
func (r *GardenRepository) Delete(ctx context.Context, id valueobjects.GardenID) error {
	pk, sk := gardenKey(id.String())

	key, err := attributevalue.MarshalMap(map[string]string{"PK": pk, "SK": sk})
	if err != nil {
		return pkgerrors.NewStoreWriteError("remove", err)
	}

	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	}); err != nil {
		r.logger.Error("Failed to delete garden from DynamoDB",
			zap.String("gardenID", id.String()),
			zap.Error(err),
		)
		return pkgerrors.NewStoreWriteError("remove", err)
	}

	return nil
}

// FindAll retrieves every garden via a filtered scan. Order is the
// table's internal key order, not insertion order.
func (r *GardenRepository) FindAll(ctx context.Context) ([]*entities.Garden, error) {
	filter := expression.Name("EntityType").Equal(expression.Value("GARDEN"))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, pkgerrors.NewStoreReadError("scan", err)
	}

	var gardens []*entities.Garden
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			r.logger.Error("Failed to scan gardens from DynamoDB", zap.Error(err))
			return nil, pkgerrors.NewStoreReadError("scan", err)
		}

		for _, item := range out.Items {
			garden, err := unmarshalGarden(item)
			if err != nil {
				return nil, err
			}
			gardens = append(gardens, garden)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return gardens, nil
}

// FindByOwner retrieves all gardens owned by the given identity via the
// owner GSI
func (r *GardenRepository) FindByOwner(ctx context.Context, owner string) ([]*entities.Garden, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(fmt.Sprintf("OWNER#%s", owner)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewStoreReadError("query", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.ownerIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		r.logger.Error("Failed to query gardens by owner",
			zap.String("owner", owner),
			zap.Error(err),
		)
		return nil, pkgerrors.NewStoreReadError("query", err)
	}

	gardens := make([]*entities.Garden, 0, len(out.Items))
	for _, item := range out.Items {
		garden, err := unmarshalGarden(item)
		if err != nil {
			return nil, err
		}
		gardens = append(gardens, garden)
	}
	return gardens, nil
}

func marshalGarden(garden *entities.Garden) (map[string]types.AttributeValue, error) {
	pk, sk := gardenKey(garden.ID().String())

	item := gardenItem{
		PK:         pk,
		SK:         sk,
		GSI1PK:     fmt.Sprintf("OWNER#%s", garden.Owner()),
		GSI1SK:     pk,
		EntityType: "GARDEN",
		GardenID:   garden.ID().String(),
		Owner:      garden.Owner(),
		Name:       garden.Name(),
		Location:   garden.Location(),
		Plants:     garden.Plants(),
		Image:      garden.Image(),
		CreatedAt:  utils.FormatRFC3339Nano(garden.CreatedAt()),
	}
	if updated := garden.UpdatedAt(); updated != nil {
		s := utils.FormatRFC3339Nano(*updated)
		item.UpdatedAt = &s
	}

	return attributevalue.MarshalMap(item)
}

func unmarshalGarden(av map[string]types.AttributeValue) (*entities.Garden, error) {
	var item gardenItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, pkgerrors.NewStoreReadError("unmarshal", err)
	}

	id, err := valueobjects.NewGardenIDFromString(item.GardenID)
	if err != nil {
		return nil, pkgerrors.NewStoreReadError("unmarshal", err)
	}

	createdAt, err := utils.ParseRFC3339Nano(item.CreatedAt)
	if err != nil {
		return nil, pkgerrors.NewStoreReadError("unmarshal", err)
	}

	var updatedAt *time.Time
	if item.UpdatedAt != nil {
		t, err := utils.ParseRFC3339Nano(*item.UpdatedAt)
		if err != nil {
			return nil, pkgerrors.NewStoreReadError("unmarshal", err)
		}
		updatedAt = &t
	}

	return entities.ReconstructGarden(
		id,
		item.Owner,
		item.Name,
		item.Location,
		item.Plants,
		item.Image,
		createdAt,
		updatedAt,
	), nil
}
