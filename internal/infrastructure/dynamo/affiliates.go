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

// AffiliateRepo provides typed DynamoDB operations for the affiliates table.
type AffiliateRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAffiliateRepo(client *dynamodb.Client, tableName string) *AffiliateRepo {
	return &AffiliateRepo{client: client, tableName: tableName}
}

func (r *AffiliateRepo) Put(ctx context.Context, a *domain.Affiliate) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal affiliate: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *AffiliateRepo) Get(ctx context.Context, affiliateID string) (*domain.Affiliate, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("affiliate_id", affiliateID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("affiliate not found: %w", domain.ErrNotFound)
	}
	var a domain.Affiliate
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AffiliateRepo) GetByUsername(ctx context.Context, username string) (*domain.Affiliate, error) {
	return r.queryGSI(ctx, "username-index", "username", username)
}

func (r *AffiliateRepo) GetByEmail(ctx context.Context, email string) (*domain.Affiliate, error) {
	return r.queryGSI(ctx, "email-index", "email", email)
}

func (r *AffiliateRepo) GetByCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	return r.queryGSI(ctx, "affiliate_code-index", "affiliate_code", code)
}

func (r *AffiliateRepo) Scan(ctx context.Context) ([]domain.Affiliate, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var affiliates []domain.Affiliate
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &affiliates); err != nil {
		return nil, err
	}
	return affiliates, nil
}

func (r *AffiliateRepo) Update(ctx context.Context, affiliateID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("affiliate_id", affiliateID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// UpdateOTP overwrites the affiliate's one-time code. Only the most recently
// stored code is ever valid.
func (r *AffiliateRepo) UpdateOTP(ctx context.Context, affiliateID, code string) error {
	return r.Update(ctx, affiliateID, map[string]interface{}{fieldOTP: code})
}

func (r *AffiliateRepo) UpdatePassword(ctx context.Context, affiliateID, passwordHash string) error {
	return r.Update(ctx, affiliateID, map[string]interface{}{fieldPasswordHash: passwordHash})
}

func (r *AffiliateRepo) SetActive(ctx context.Context, affiliateID string, active bool) error {
	return r.Update(ctx, affiliateID, map[string]interface{}{fieldActive: active})
}

func (r *AffiliateRepo) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.client, r.tableName, "active = :t", nil, map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
	})
}

func (r *AffiliateRepo) queryGSI(ctx context.Context, index, attr, value string) (*domain.Affiliate, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("affiliate not found: %w", domain.ErrNotFound)
	}
	var a domain.Affiliate
	if err := attributevalue.UnmarshalMap(out.Items[0], &a); err != nil {
		return nil, err
	}
	return &a, nil
}
