package dynamo

// DynamoDB attribute names used in update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldActive       = "active"
	fieldDeletedAt    = "deleted_at"
	fieldOTP          = "otp"
	fieldPasswordHash = "password_hash"
	fieldPackageID    = "package_id"
	fieldFreeIQUsed   = "free_iq_used"
	fieldResumeObject = "resume_object"
	fieldStatus       = "status"
	fieldProblem      = "problem"
	fieldProblemNote  = "problem_note"
	fieldUpdatedAt    = "updated_at"
)
