package models

import (
	"database/sql"
	"time"
)

// User roles recognized by the messaging workflow. Coach personas are
// ordinary users carrying the ADMIN or MENTOR role.
const (
	RoleStudent = "STUDENT"
	RoleMentor  = "MENTOR"
	RoleAdmin   = "ADMIN"
)

// User represents a platform account as seen by the messaging workflow.
// It is created by the registration flow (an external collaborator) and
// mutated here only to pin a coach persona onto a student.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique account address. Coach personas are resolved by
	// a configured priority list of these addresses.
	Email string `json:"email"`

	// FirstName is used for {{firstName}} template personalization.
	FirstName string `json:"first_name"`

	// LastName is the user's family name; display only.
	LastName string `json:"last_name"`

	// Role is one of RoleStudent, RoleMentor, RoleAdmin.
	Role string `json:"role"`

	// IsActive marks the account as enabled for the platform.
	IsActive bool `json:"is_active"`

	// IsFake marks seeded/test profiles. Fake profiles never receive
	// any automated message.
	IsFake bool `json:"is_fake"`

	// AssignedCoachID is a weak reference to the User acting as this
	// student's coach persona. Invalid when no coach has been pinned yet.
	AssignedCoachID sql.NullInt64 `json:"assigned_coach_id"`

	// MiniDiplomaCategory is the mini-diploma track the user enrolled in,
	// empty when not enrolled.
	MiniDiplomaCategory string `json:"mini_diploma_category"`

	// FirstLoginAt is set once, on the user's first login.
	FirstLoginAt sql.NullTime `json:"first_login_at"`

	// LastLoginAt is refreshed on every login.
	LastLoginAt sql.NullTime `json:"last_login_at"`

	// LoginCount is the total number of recorded logins.
	LoginCount int64 `json:"login_count"`

	// CreatedAt is the account creation timestamp. Coach fallback
	// resolution orders ADMIN/MENTOR accounts by this field.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
