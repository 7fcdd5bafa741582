package repository

import (
	"context"
	"errors"
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
	defaultEstimatesTableName = "estimates"
	estimatesJobIDIndex       = "job_id-index"
)

type estimateItem struct {
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	EstimateNumber string `dynamodbav:"estimate_number"`
	Subtotal       string `dynamodbav:"subtotal"`
	TotalAmount    string `dynamodbav:"total_amount"`
	MarkupPercent  string `dynamodbav:"markup_percent"`
	Status         string `dynamodbav:"status"`

	CreatedBy  string `dynamodbav:"created_by,omitempty"`
	ApprovedBy string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt string `dynamodbav:"approved_at,omitempty"`

	LocksMeasurements bool `dynamodbav:"locks_measurements"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// The approval transition is a conditional write on status: two racing
// approvals cannot both succeed, the loser reads back the zero value.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateItem(it))
	}
	return items, nil
}

func (r *EstimateDynamoRepository) UpdateTotals(ctx context.Context, id string, subtotal, total float64) (entities.Estimate, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #subtotal = :subtotal, #total_amount = :total_amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":subtotal":     &types.AttributeValueMemberS{Value: floatToString(subtotal)},
			":total_amount": &types.AttributeValueMemberS{Value: floatToString(total)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#subtotal":     "subtotal",
			"#total_amount": "total_amount",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateMarkup(ctx context.Context, id string, markupPercent float64) (entities.Estimate, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #markup_percent = :markup_percent, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":markup_percent": &types.AttributeValueMemberS{Value: floatToString(markupPercent)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#markup_percent": "markup_percent",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) ApproveIfNotApproved(ctx context.Context, id, approvedBy string, at time.Time) (entities.Estimate, error) {
	cond := aws.String("attribute_exists(#id) AND #status <> :approved_status")
	return r.update(ctx, id, cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #approved_by = :approved_by, #approved_at = :approved_at, #locks_measurements = :locks, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":          &types.AttributeValueMemberS{Value: string(entities.EstimateStatusApproved)},
			":approved_status": &types.AttributeValueMemberS{Value: string(entities.EstimateStatusApproved)},
			":approved_by":     &types.AttributeValueMemberS{Value: approvedBy},
			":approved_at":     &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":locks":           &types.AttributeValueMemberBOOL{Value: true},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#approved_by":        "approved_by",
			"#approved_at":        "approved_at",
			"#locks_measurements": "locks_measurements",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) RecordRejection(ctx context.Context, id, approvedBy string, at time.Time) (entities.Estimate, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #approved_by = :approved_by, #approved_at = :approved_at, #locks_measurements = :locks, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(entities.EstimateStatusRejected)},
			":approved_by": &types.AttributeValueMemberS{Value: approvedBy},
			":approved_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":locks":       &types.AttributeValueMemberBOOL{Value: false},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#approved_by":        "approved_by",
			"#approved_at":        "approved_at",
			"#locks_measurements": "locks_measurements",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	condition *string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	if condition == nil {
		condition = aws.String("attribute_exists(#id)")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       condition,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:                e.ID,
		JobID:             e.JobID,
		EstimateNumber:    e.EstimateNumber,
		Subtotal:          floatToString(e.Subtotal),
		TotalAmount:       floatToString(e.TotalAmount),
		MarkupPercent:     floatToString(e.MarkupPercent),
		Status:            string(e.Status),
		CreatedBy:         e.CreatedBy,
		ApprovedBy:        e.ApprovedBy,
		LocksMeasurements: e.LocksMeasurements,
		CreatedAt:         e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.ApprovedAt != nil {
		it.ApprovedAt = e.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	totalAmount, _ := strconv.ParseFloat(it.TotalAmount, 64)
	markupPercent, _ := strconv.ParseFloat(it.MarkupPercent, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	e := entities.Estimate{
		ID:                it.ID,
		JobID:             it.JobID,
		EstimateNumber:    it.EstimateNumber,
		Subtotal:          subtotal,
		TotalAmount:       totalAmount,
		MarkupPercent:     markupPercent,
		Status:            entities.EstimateStatus(it.Status),
		CreatedBy:         it.CreatedBy,
		ApprovedBy:        it.ApprovedBy,
		LocksMeasurements: it.LocksMeasurements,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.ApprovedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			e.ApprovedAt = &t
		}
	}
	return e
}
