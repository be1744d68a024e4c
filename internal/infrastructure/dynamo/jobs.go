package dynamo

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/agaman/jobboard-api/internal/domain"
)

// JobRepo provides typed DynamoDB operations for the stored-jobs table.
// Rows are written by the external fetcher pipeline; this API reads them.
type JobRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewJobRepo(client *dynamodb.Client, tableName string) *JobRepo {
	return &JobRepo{client: client, tableName: tableName}
}

func (r *JobRepo) Put(ctx context.Context, j *domain.Job) error {
	item, err := attributevalue.MarshalMap(j)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *JobRepo) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("job_id", jobID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("job not found: %w", domain.ErrNotFound)
	}
	var j domain.Job
	if err := attributevalue.UnmarshalMap(out.Item, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepo) Scan(ctx context.Context) ([]domain.Job, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("active = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
	}
	var jobs []domain.Job
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Job
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		jobs = append(jobs, page...)
	}
	return jobs, nil
}

// Search returns active jobs whose title contains title and, when location is
// non-empty, whose location contains it. Matching is case-insensitive and
// happens client-side after the filtered scan.
func (r *JobRepo) Search(ctx context.Context, title, location string) ([]domain.Job, error) {
	jobs, err := r.Scan(ctx)
	if err != nil {
		return nil, err
	}
	titleNeedle := strings.ToLower(title)
	locNeedle := strings.ToLower(location)
	matched := jobs[:0]
	for _, j := range jobs {
		if !strings.Contains(strings.ToLower(j.Title), titleNeedle) {
			continue
		}
		if locNeedle != "" && !strings.Contains(strings.ToLower(j.Location), locNeedle) {
			continue
		}
		matched = append(matched, j)
	}
	return matched, nil
}

func (r *JobRepo) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.client, r.tableName, "active = :t", nil, map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
	})
}
