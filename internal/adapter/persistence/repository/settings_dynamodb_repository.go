package repository

import (
	"context"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	costEstimationSettingsID = "cost_estimation"
)

type settingsItem struct {
	ID            string  `dynamodbav:"id"`
	DefaultRatio  float64 `dynamodbav:"default_ratio"`
	WarnThreshold float64 `dynamodbav:"warn_threshold"`
}

// SettingsDynamoRepository persists administrator settings in DynamoDB as
// one well-known row per settings group.
//
// Table requirements:
//   - PK: id (string)

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// GetCostEstimation falls back to the defaults when the row has never been
// written, so a fresh environment behaves sensibly without seeding.
func (r *SettingsDynamoRepository) GetCostEstimation(ctx context.Context) (entities.CostEstimationSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: costEstimationSettingsID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostEstimationSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultCostEstimationSettings(), nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostEstimationSettings{}, err
	}
	return entities.CostEstimationSettings{
		DefaultRatio:  it.DefaultRatio,
		WarnThreshold: it.WarnThreshold,
	}, nil
}

func (r *SettingsDynamoRepository) PutCostEstimation(ctx context.Context, s entities.CostEstimationSettings) (entities.CostEstimationSettings, error) {
	av, err := attributevalue.MarshalMap(settingsItem{
		ID:            costEstimationSettingsID,
		DefaultRatio:  s.DefaultRatio,
		WarnThreshold: s.WarnThreshold,
	})
	if err != nil {
		return entities.CostEstimationSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CostEstimationSettings{}, err
	}
	return s, nil
}
