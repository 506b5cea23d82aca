package domain

import "time"

// Role is the marketplace role of a user.
type Role string

const (
	// RoleClient searches, saves and applies to units.
	RoleClient Role = "client"
	// RoleBroker lists and manages units and reviews applications.
	RoleBroker Role = "broker"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r == RoleClient || r == RoleBroker }

// Actor is the already-authenticated identity on whose behalf an operation
// runs. Services only check ownership and role against it.
type Actor struct {
	ID   UserID
	Role Role
}

// Is reports whether the actor is the user identified by id.
func (a Actor) Is(id UserID) bool { return a.ID == id }

// User is a registered client or broker.
type User struct {
	ID    UserID `json:"id"`
	Role  Role   `json:"role"`
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`

	// Avatar is the profile picture, nil when none was uploaded.
	Avatar *Asset `json:"avatar,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
