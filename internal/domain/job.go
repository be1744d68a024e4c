package domain

import "time"

// Job is a stored job posting. Rows are written by external fetcher
// integrations; this API only serves the read surface.
type Job struct {
	JobID       string    `json:"id" dynamodbav:"job_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Company     string    `json:"company" dynamodbav:"company"`
	Location    string    `json:"location" dynamodbav:"location"`
	Description string    `json:"description" dynamodbav:"description"`
	Source      string    `json:"source" dynamodbav:"source"`
	URL         string    `json:"url" dynamodbav:"url"`
	PostedAt    time.Time `json:"posted_at" dynamodbav:"posted_at"`
	Active      bool      `json:"is_active" dynamodbav:"active"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
}

type JobSearchRequest struct {
	Title    string `json:"title" validate:"required"`
	Location string `json:"location"`
}
