package models

import "time"

// Role is the account kind of a [User].
type Role string

const (
	// RoleClient is a person logging meals and activity.
	RoleClient Role = "client"

	// RoleNutritionist is a professional supervising a set of clients.
	RoleNutritionist Role = "nutritionist"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleNutritionist
}

// User represents an account of either role.
//
// A client is either active with a usable password, or inactive with a
// pending invitation token. Nutritionists never carry a NutritionistID.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Email is unique across all users and stored lower-cased.
	Email string `json:"email"`

	// Password is the stored credential in "<hex-hash>.<hex-salt>" form.
	// It is never serialised.
	Password string `json:"-"`

	// Name is the display name.
	Name string `json:"name"`

	// Role is either client or nutritionist.
	Role Role `json:"role"`

	// NutritionistID links a client to the supervising nutritionist.
	NutritionistID *int64 `json:"nutritionist_id,omitempty"`

	// Active is false while an invitation is pending.
	Active bool `json:"active"`

	// InviteToken is the pending single-use activation token.
	InviteToken *string `json:"-"`

	// InviteExpires is the deadline of InviteToken.
	InviteExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Actor returns the request principal derived from u.
func (u User) Actor() Actor {
	if u.Role == RoleNutritionist {
		return NutritionistActor{ID: u.ID}
	}
	return ClientActor{ID: u.ID, NutritionistID: u.NutritionistID}
}

// SupervisedBy reports whether nutritionistID supervises u.
func (u User) SupervisedBy(nutritionistID int64) bool {
	return u.NutritionistID != nil && *u.NutritionistID == nutritionistID
}

// RegisterRequest is the body of a self-registration call.
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	NutritionistID *int64 `json:"nutritionist_id,omitempty"`
}

// LoginRequest is the body of a login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
