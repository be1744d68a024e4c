package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/agaman/jobboard-api/internal/domain"
)

// SettingRepo provides typed DynamoDB operations for the settings table.
// Settings are keyed by name and read per-request, never cached.
type SettingRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSettingRepo(client *dynamodb.Client, tableName string) *SettingRepo {
	return &SettingRepo{client: client, tableName: tableName}
}

func (r *SettingRepo) Put(ctx context.Context, s *domain.Setting) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal setting: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SettingRepo) GetByName(ctx context.Context, name string) (*domain.Setting, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("setting_name", name),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("setting %q not found: %w", name, domain.ErrNotFound)
	}
	var s domain.Setting
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepo) Scan(ctx context.Context) ([]domain.Setting, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var settings []domain.Setting
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}
