package domain

import "time"

// UserJob is a job application tracked for a job seeker: which posting they
// applied to and how the application is going. Rows flagged as problems feed
// the admin review queue.
type UserJob struct {
	UserJobID   string     `json:"id" dynamodbav:"user_job_id"`
	UserID      string     `json:"user_id" dynamodbav:"user_id"`
	JobID       string     `json:"job_id" dynamodbav:"job_id"`
	Title       string     `json:"title" dynamodbav:"title"`
	Company     string     `json:"company" dynamodbav:"company"`
	Location    string     `json:"location" dynamodbav:"location"`
	URL         string     `json:"url" dynamodbav:"url"`
	Status      string     `json:"status" dynamodbav:"status"`
	Problem     bool       `json:"is_problem" dynamodbav:"problem"`
	ProblemNote string     `json:"problem_note,omitempty" dynamodbav:"problem_note"`
	Active      bool       `json:"is_active" dynamodbav:"active"`
	AppliedAt   time.Time  `json:"applied_at" dynamodbav:"applied_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt   time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateUserJobRequest struct {
	UserID    string     `json:"user_id" validate:"required"`
	JobID     string     `json:"job_id" validate:"required"`
	Title     string     `json:"title" validate:"required"`
	Company   string     `json:"company"`
	Location  string     `json:"location"`
	URL       string     `json:"url"`
	Status    string     `json:"status"`
	AppliedAt *time.Time `json:"applied_at"`
}

type UpdateUserJobRequest struct {
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
	URL      *string `json:"url"`
	Status   *string `json:"status"`
	Active   *bool   `json:"is_active"`
}

// UserJobProblemRequest flags or clears a tracked application as problematic.
type UserJobProblemRequest struct {
	UserJobID string `json:"user_job_id" validate:"required"`
	Problem   bool   `json:"is_problem"`
	Note      string `json:"note"`
}

// UserJobCounts aggregates one job seeker's tracked applications.
type UserJobCounts struct {
	Total   int `json:"total"`
	Problem int `json:"problem"`
}

// UserJobsDateCountRequest scopes an application count to a date window.
type UserJobsDateCountRequest struct {
	UserID string    `json:"user_id" validate:"required"`
	From   time.Time `json:"from" validate:"required"`
	To     time.Time `json:"to" validate:"required"`
}

// JobSeekerJobCount pairs a recruiter's job seeker with how many applications
// they have tracked.
type JobSeekerJobCount struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	JobCount int    `json:"job_count"`
}
