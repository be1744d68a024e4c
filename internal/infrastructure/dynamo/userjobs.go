package dynamo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserJobRepo provides typed DynamoDB operations for the tracked-applications
// table. Rows are keyed by user_job_id with a user_id GSI for per-seeker reads.
type UserJobRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewUserJobRepo(client *dynamodb.Client, tableName string) *UserJobRepo {
	return &UserJobRepo{client: client, tableName: tableName}
}

func (r *UserJobRepo) Put(ctx context.Context, uj *domain.UserJob) error {
	item, err := attributevalue.MarshalMap(uj)
	if err != nil {
		return fmt.Errorf("marshal user job: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *UserJobRepo) Get(ctx context.Context, userJobID string) (*domain.UserJob, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_job_id", userJobID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("user job not found: %w", domain.ErrNotFound)
	}
	var uj domain.UserJob
	if err := attributevalue.UnmarshalMap(out.Item, &uj); err != nil {
		return nil, err
	}
	return &uj, nil
}

func (r *UserJobRepo) Update(ctx context.Context, userJobID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("user_job_id", userJobID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// SetActive toggles the soft-delete flag. Deactivated rows stay in the table.
func (r *UserJobRepo) SetActive(ctx context.Context, userJobID string, active bool) error {
	updates := map[string]interface{}{fieldActive: active}
	if !active {
		updates[fieldDeletedAt] = time.Now().UTC().Format(time.RFC3339)
	}
	return r.Update(ctx, userJobID, updates)
}

// ListByUser returns all applications tracked for one job seeker.
func (r *UserJobRepo) ListByUser(ctx context.Context, userID string) ([]domain.UserJob, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("user_id-index"),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: userID}},
	})
	if err != nil {
		return nil, err
	}
	var jobs []domain.UserJob
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Scan returns all active tracked applications. searchName, when non-empty,
// filters on a case-insensitive match against title and company; the
// comparison happens client-side because DynamoDB contains() is case-sensitive.
func (r *UserJobRepo) Scan(ctx context.Context, searchName string) ([]domain.UserJob, error) {
	return r.scanFiltered(ctx, "active = :t", map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
	}, searchName)
}

// ScanProblems returns active applications flagged as problematic.
func (r *UserJobRepo) ScanProblems(ctx context.Context, searchName string) ([]domain.UserJob, error) {
	return r.scanFiltered(ctx, "active = :t AND problem = :p", map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
		":p": &types.AttributeValueMemberBOOL{Value: true},
	}, searchName)
}

func (r *UserJobRepo) scanFiltered(ctx context.Context, filter string, values map[string]types.AttributeValue, searchName string) ([]domain.UserJob, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeValues: values,
	}
	var jobs []domain.UserJob
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.UserJob
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		jobs = append(jobs, page...)
	}
	if searchName == "" {
		return jobs, nil
	}
	needle := strings.ToLower(searchName)
	filtered := jobs[:0]
	for _, uj := range jobs {
		if strings.Contains(strings.ToLower(uj.Title), needle) ||
			strings.Contains(strings.ToLower(uj.Company), needle) {
			filtered = append(filtered, uj)
		}
	}
	return filtered, nil
}

// Exists reports whether the user already tracks an application for the job.
func (r *UserJobRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("user_id-index"),
		KeyConditionExpression:    aws.String("#a = :v"),
		FilterExpression:          aws.String("job_id = :j AND active = :t"),
		ExpressionAttributeNames:  map[string]string{"#a": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: userID},
			":j": &types.AttributeValueMemberS{Value: jobID},
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

// CountByUser returns the number of active applications for one job seeker.
func (r *UserJobRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	return scanCount(ctx, r.client, r.tableName, "user_id = :u AND active = :t", nil, map[string]types.AttributeValue{
		":u": &types.AttributeValueMemberS{Value: userID},
		":t": &types.AttributeValueMemberBOOL{Value: true},
	})
}

// CountProblemsByUser returns the number of flagged applications for one job seeker.
func (r *UserJobRepo) CountProblemsByUser(ctx context.Context, userID string) (int, error) {
	return scanCount(ctx, r.client, r.tableName, "user_id = :u AND active = :t AND problem = :p", nil, map[string]types.AttributeValue{
		":u": &types.AttributeValueMemberS{Value: userID},
		":t": &types.AttributeValueMemberBOOL{Value: true},
		":p": &types.AttributeValueMemberBOOL{Value: true},
	})
}

// CountByUserBetween counts one seeker's applications submitted inside the
// window. applied_at is stored RFC 3339 in UTC, so string comparison orders
// chronologically.
func (r *UserJobRepo) CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	return scanCount(ctx, r.client, r.tableName,
		"user_id = :u AND active = :t AND applied_at BETWEEN :f AND :e", nil,
		map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: userID},
			":t": &types.AttributeValueMemberBOOL{Value: true},
			":f": &types.AttributeValueMemberS{Value: from.UTC().Format(time.RFC3339Nano)},
			":e": &types.AttributeValueMemberS{Value: to.UTC().Format(time.RFC3339Nano)},
		})
}
