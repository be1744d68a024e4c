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

// PackageRepo provides typed DynamoDB operations for the packages table.
type PackageRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPackageRepo(client *dynamodb.Client, tableName string) *PackageRepo {
	return &PackageRepo{client: client, tableName: tableName}
}

func (r *PackageRepo) Put(ctx context.Context, p *domain.Package) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal package: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *PackageRepo) Get(ctx context.Context, packageID string) (*domain.Package, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("package_id", packageID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("package not found: %w", domain.ErrNotFound)
	}
	var p domain.Package
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepo) Scan(ctx context.Context) ([]domain.Package, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var packages []domain.Package
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepo) Update(ctx context.Context, packageID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("package_id", packageID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *PackageRepo) Delete(ctx context.Context, packageID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("package_id", packageID),
	})
	return err
}

func (r *PackageRepo) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.client, r.tableName, "active = :t", nil, map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
	})
}
