package repository

import (
	"context"
	"errors"
	"fmt"
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
	defaultMeasurementsTableName = "measurements"
	measurementsJobIDIndex       = "job_id-index"

	// DynamoDB caps BatchWriteItem at 25 requests per call.
	batchWriteChunkSize = 25

	// BatchWriteItem can return part of a batch unprocessed (throttling)
	// with a nil error; those requests are retried this many times.
	batchWriteMaxRetries = 3
)

var ErrBatchWriteIncomplete = errors.New("batch write left unprocessed items")

type measurementItem struct {
	ID       string `dynamodbav:"id"`
	JobID    string `dynamodbav:"job_id"`
	RoomName string `dynamodbav:"room_name,omitempty"`
	Surface  string `dynamodbav:"surface_type"`
	HeightFt string `dynamodbav:"height_ft"`
	WidthFt  string `dynamodbav:"width_ft"`
	AreaSqFt string `dynamodbav:"area_sq_ft"`
	System   string `dynamodbav:"insulation_type"`

	ThicknessIn  string `dynamodbav:"thickness_in,omitempty"`
	ClosedCellIn string `dynamodbav:"closed_cell_in,omitempty"`
	OpenCellIn   string `dynamodbav:"open_cell_in,omitempty"`

	RValue string `dynamodbav:"r_value,omitempty"`

	OverridePricePerSqFt string `dynamodbav:"override_price_per_sq_ft,omitempty"`
	OverrideSetAt        string `dynamodbav:"override_set_at,omitempty"`

	UnitPrice string `dynamodbav:"unit_price"`
	LineCost  string `dynamodbav:"line_cost"`

	IsLocked           bool   `dynamodbav:"is_locked"`
	LockedByEstimateID string `dynamodbav:"locked_by_estimate_id,omitempty"`
	LockedAt           string `dynamodbav:"locked_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MeasurementDynamoRepository persists Measurement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Lock flips are bulk: one Query over the job index, then BatchWriteItem puts
// in chunks of 25. The approval flow owns the invariant that at most one
// estimate per job holds the lock; this layer only flips the flags.

type MeasurementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMeasurementRepository = (*MeasurementDynamoRepository)(nil)

func NewMeasurementDynamoRepository(ddb *dynamodb.Client) *MeasurementDynamoRepository {
	return &MeasurementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEASUREMENTS_TABLE", defaultMeasurementsTableName),
	}
}

func (r *MeasurementDynamoRepository) Create(ctx context.Context, m entities.Measurement) (entities.Measurement, error) {
	it := toMeasurementItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Measurement{}, err
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
		return entities.Measurement{}, err
	}
	return m, nil
}

func (r *MeasurementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Measurement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Measurement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Measurement{}, nil
	}

	var it measurementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Measurement{}, err
	}
	return fromMeasurementItem(it), nil
}

func (r *MeasurementDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Measurement, error) {
	items, err := r.queryByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	ms := make([]entities.Measurement, 0, len(items))
	for _, it := range items {
		ms = append(ms, fromMeasurementItem(it))
	}
	return ms, nil
}

func (r *MeasurementDynamoRepository) Update(ctx context.Context, m entities.Measurement) (entities.Measurement, error) {
	it := toMeasurementItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Measurement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Measurement{}, err
	}
	return m, nil
}

func (r *MeasurementDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *MeasurementDynamoRepository) LockByJobID(ctx context.Context, jobID, estimateID string, at time.Time) error {
	return r.rewriteByJobID(ctx, jobID, func(it *measurementItem) bool {
		it.IsLocked = true
		it.LockedByEstimateID = estimateID
		it.LockedAt = at.UTC().Format(time.RFC3339Nano)
		it.UpdatedAt = at.UTC().Format(time.RFC3339Nano)
		return true
	})
}

func (r *MeasurementDynamoRepository) UnlockByEstimateID(ctx context.Context, jobID, estimateID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return r.rewriteByJobID(ctx, jobID, func(it *measurementItem) bool {
		// Only release locks this estimate holds.
		if !it.IsLocked || it.LockedByEstimateID != estimateID {
			return false
		}
		it.IsLocked = false
		it.LockedByEstimateID = ""
		it.LockedAt = ""
		it.UpdatedAt = now
		return true
	})
}

// rewriteByJobID queries all measurements of the job, applies mutate to each
// and batch-writes back the ones mutate accepted.
func (r *MeasurementDynamoRepository) rewriteByJobID(ctx context.Context, jobID string, mutate func(*measurementItem) bool) error {
	items, err := r.queryByJobID(ctx, jobID)
	if err != nil {
		return err
	}

	writes := make([]types.WriteRequest, 0, len(items))
	for i := range items {
		if !mutate(&items[i]) {
			continue
		}
		av, err := attributevalue.MarshalMap(items[i])
		if err != nil {
			return err
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	return writeBatches(ctx, writes, func(ctx context.Context, reqs []types.WriteRequest) ([]types.WriteRequest, error) {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: reqs,
			},
		})
		if err != nil {
			return nil, err
		}
		return out.UnprocessedItems[r.tableName], nil
	})
}

// writeBatches sends writes through send in chunks of batchWriteChunkSize.
// Requests send reports back as unprocessed are retried with a growing delay;
// a chunk that still has unprocessed requests after the retry budget fails the
// whole call, so a lock flip either covers every measurement or errors.
func writeBatches(ctx context.Context, writes []types.WriteRequest, send func(context.Context, []types.WriteRequest) ([]types.WriteRequest, error)) error {
	for start := 0; start < len(writes); start += batchWriteChunkSize {
		end := start + batchWriteChunkSize
		if end > len(writes) {
			end = len(writes)
		}

		pending := writes[start:end]
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt > batchWriteMaxRetries {
				return fmt.Errorf("%w: %d of %d requests after %d retries", ErrBatchWriteIncomplete, len(pending), end-start, batchWriteMaxRetries)
			}
			if attempt > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
				}
			}
			rest, err := send(ctx, pending)
			if err != nil {
				return err
			}
			pending = rest
		}
	}
	return nil
}

func (r *MeasurementDynamoRepository) queryByJobID(ctx context.Context, jobID string) ([]measurementItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(measurementsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]measurementItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it measurementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func toMeasurementItem(m entities.Measurement) measurementItem {
	it := measurementItem{
		ID:                 m.ID,
		JobID:              m.JobID,
		RoomName:           m.RoomName,
		Surface:            string(m.Surface),
		HeightFt:           floatToString(m.HeightFt),
		WidthFt:            floatToString(m.WidthFt),
		AreaSqFt:           floatToString(m.AreaSqFt),
		System:             string(m.System),
		RValue:             m.RValue,
		UnitPrice:          floatToString(m.UnitPrice),
		LineCost:           floatToString(m.LineCost),
		IsLocked:           m.IsLocked,
		LockedByEstimateID: m.LockedByEstimateID,
		CreatedAt:          m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if m.ThicknessIn > 0 {
		it.ThicknessIn = floatToString(m.ThicknessIn)
	}
	if m.ClosedCellIn > 0 {
		it.ClosedCellIn = floatToString(m.ClosedCellIn)
	}
	if m.OpenCellIn > 0 {
		it.OpenCellIn = floatToString(m.OpenCellIn)
	}
	if m.OverridePricePerSqFt != nil {
		it.OverridePricePerSqFt = floatToString(*m.OverridePricePerSqFt)
	}
	if m.OverrideSetAt != nil {
		it.OverrideSetAt = m.OverrideSetAt.UTC().Format(time.RFC3339Nano)
	}
	if m.LockedAt != nil {
		it.LockedAt = m.LockedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromMeasurementItem(it measurementItem) entities.Measurement {
	heightFt, _ := strconv.ParseFloat(it.HeightFt, 64)
	widthFt, _ := strconv.ParseFloat(it.WidthFt, 64)
	areaSqFt, _ := strconv.ParseFloat(it.AreaSqFt, 64)
	thicknessIn, _ := strconv.ParseFloat(it.ThicknessIn, 64)
	closedCellIn, _ := strconv.ParseFloat(it.ClosedCellIn, 64)
	openCellIn, _ := strconv.ParseFloat(it.OpenCellIn, 64)
	unitPrice, _ := strconv.ParseFloat(it.UnitPrice, 64)
	lineCost, _ := strconv.ParseFloat(it.LineCost, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	m := entities.Measurement{
		ID:                 it.ID,
		JobID:              it.JobID,
		RoomName:           it.RoomName,
		Surface:            entities.SurfaceType(it.Surface),
		HeightFt:           heightFt,
		WidthFt:            widthFt,
		AreaSqFt:           areaSqFt,
		System:             entities.InsulationType(it.System),
		ThicknessIn:        thicknessIn,
		ClosedCellIn:       closedCellIn,
		OpenCellIn:         openCellIn,
		RValue:             it.RValue,
		UnitPrice:          unitPrice,
		LineCost:           lineCost,
		IsLocked:           it.IsLocked,
		LockedByEstimateID: it.LockedByEstimateID,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.OverridePricePerSqFt != "" {
		if v, err := strconv.ParseFloat(it.OverridePricePerSqFt, 64); err == nil {
			m.OverridePricePerSqFt = &v
		}
	}
	if it.OverrideSetAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.OverrideSetAt); err == nil {
			m.OverrideSetAt = &t
		}
	}
	if it.LockedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.LockedAt); err == nil {
			m.LockedAt = &t
		}
	}
	return m
}
