package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/agaman/jobboard-api/internal/domain"
)

// PromoRepo provides typed DynamoDB operations for the promos table.
type PromoRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPromoRepo(client *dynamodb.Client, tableName string) *PromoRepo {
	return &PromoRepo{client: client, tableName: tableName}
}

func (r *PromoRepo) Put(ctx context.Context, p *domain.Promo) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal promo: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *PromoRepo) Get(ctx context.Context, promoID string) (*domain.Promo, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("promo_id", promoID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("promo not found: %w", domain.ErrNotFound)
	}
	var p domain.Promo
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepo) GetByCode(ctx context.Context, code string) (*domain.Promo, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("promo_code-index"),
		KeyConditionExpression:    aws.String("#c = :v"),
		ExpressionAttributeNames:  map[string]string{"#c": "promo_code"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: code}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("promo not found: %w", domain.ErrNotFound)
	}
	var p domain.Promo
	if err := attributevalue.UnmarshalMap(out.Items[0], &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepo) Scan(ctx context.Context) ([]domain.Promo, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var promos []domain.Promo
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

func (r *PromoRepo) Update(ctx context.Context, promoID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("promo_id", promoID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *PromoRepo) SetActive(ctx context.Context, promoID string, active bool) error {
	return r.Update(ctx, promoID, map[string]interface{}{fieldActive: active})
}

func (r *PromoRepo) Delete(ctx context.Context, promoID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("promo_id", promoID),
	})
	return err
}

func (r *PromoRepo) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.client, r.tableName, "active = :t", nil, map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
	})
}
