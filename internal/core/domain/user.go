package domain

import "time"

// Role is the capability an authenticated account acts with.
type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleFreelancer Role = "FREELANCER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

// Actor is the identity performing an operation. It is resolved once per call
// by the identity layer and passed explicitly into every lifecycle operation.
type Actor struct {
	UserID int64
	Role   Role
}

// User models an account that can log in. Profiles (Client, Freelancer)
// reference it by OwnerUserID.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
