package repository

import (
	"context"
	"strconv"
	"time"

	"foamtrack/internal/domain/entities"
	"foamtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName = "deposits"
	depositsEstimateIDIndex  = "estimate_id-index"
)

type depositItem struct {
	ID                 string                 `dynamodbav:"id"`
	EstimateID         string                 `dynamodbav:"estimate_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// DepositDynamoRepository persists DepositPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)

type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.DepositPayment) (entities.DepositPayment, error) {
	it := toDepositItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DepositPayment{}, err
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
		return entities.DepositPayment{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositPayment{}, nil
	}

	var it depositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositPayment{}, err
	}
	return fromDepositItem(it), nil
}

func (r *DepositDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DepositPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositItem(it))
	}
	return items, nil
}

func toDepositItem(d entities.DepositPayment) depositItem {
	return depositItem{
		ID:                 d.ID,
		EstimateID:         d.EstimateID,
		Amount:             floatToString(d.Amount),
		Date:               d.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(d.Status),
		ProviderPayload:    d.ProviderPayload,
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
	}
}

func fromDepositItem(it depositItem) entities.DepositPayment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.DepositPayment{
		ID:                 it.ID,
		EstimateID:         it.EstimateID,
		Amount:             amount,
		Date:               dt,
		Status:             entities.DepositStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
