package repository

import (
	"context"
	"log"
	"strconv"

	"foamtrack/internal/domain/entities"
	"foamtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultRateBracketsTableName = "rate_brackets"

type rateBracketItem struct {
	System         string `dynamodbav:"insulation_type"`
	MinRValue      string `dynamodbav:"min_r_value"`
	MaxRValue      string `dynamodbav:"max_r_value"`
	PricePerSqFt   string `dynamodbav:"price_per_sq_ft"`
	ThicknessLabel string `dynamodbav:"thickness_label,omitempty"`
	Version        string `dynamodbav:"version,omitempty"`
}

// RateTableDynamoRepository reads the published R-value rate brackets from
// DynamoDB. Per-inch rates and R-per-inch constants are part of the built-in
// catalog; only the bracket rows are store-managed.
//
// An empty table falls back to the built-in catalog so a fresh install can
// price jobs without seeding.
//
// Table requirements:
//   - PK: insulation_type (string), SK: min_r_value (string)

type RateTableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateTableRepository = (*RateTableDynamoRepository)(nil)

func NewRateTableDynamoRepository(ddb *dynamodb.Client) *RateTableDynamoRepository {
	return &RateTableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_BRACKETS_TABLE", defaultRateBracketsTableName),
	}
}

func (r *RateTableDynamoRepository) Snapshot(ctx context.Context) (entities.RateTable, error) {
	rt := entities.DefaultRateTable()

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return entities.RateTable{}, err
	}
	if len(out.Items) == 0 {
		log.Printf("[rate_table][repository] table %s empty, using built-in catalog version=%s", r.tableName, rt.Version)
		return rt, nil
	}

	brackets := make([]entities.RateBracket, 0, len(out.Items))
	version := rt.Version
	for _, raw := range out.Items {
		var it rateBracketItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.RateTable{}, err
		}
		minR, _ := strconv.ParseFloat(it.MinRValue, 64)
		maxR, _ := strconv.ParseFloat(it.MaxRValue, 64)
		price, _ := strconv.ParseFloat(it.PricePerSqFt, 64)
		brackets = append(brackets, entities.RateBracket{
			System:         entities.InsulationType(it.System),
			MinRValue:      minR,
			MaxRValue:      maxR,
			PricePerSqFt:   price,
			ThicknessLabel: it.ThicknessLabel,
		})
		if it.Version != "" {
			version = it.Version
		}
	}

	rt.Brackets = brackets
	rt.Version = version
	return rt, nil
}
