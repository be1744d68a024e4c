package domain

// Well-known role names. RoleAffiliate is not stored in the roles table;
// affiliate tokens carry it directly.
const (
	RoleAdmin     = "Admin"
	RoleRecruiter = "Recruiter"
	RoleJobSeeker = "JobSeeker"
	RoleAffiliate = "Affiliate"
)

type Role struct {
	RoleID string `json:"id" dynamodbav:"role_id"`
	Name   string `json:"name" dynamodbav:"name"`
	Active bool   `json:"is_active" dynamodbav:"active"`
}

type UpdateRoleRequest struct {
	RoleID string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Active *bool  `json:"is_active"`
}
