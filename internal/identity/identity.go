package identity

import (
	"time"

	internal "github.com/govflow/govflow/internal"
	identityDatamodel "github.com/govflow/govflow/internal/core/datamodel/identity"
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Position   string    `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RecipientKind distinguishes referral targets: an individual user or a
// department alias.
type RecipientKind string

const (
	RecipientKindUser       RecipientKind = "user"
	RecipientKindDepartment RecipientKind = "department"
)

// Recipient is a resolved referral target.
type Recipient struct {
	ID         string        `json:"id"`
	Kind       RecipientKind `json:"kind"`
	Name       string        `json:"name"`
	Department string        `json:"department"`
}

var (
	ErrUserNotFound      = internal.ErrUserNotFound
	ErrRecipientNotFound = internal.ErrRecipientNotFound
)

func ToDataModel(u *User) *identityDatamodel.User {
	return &identityDatamodel.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Role:       u.Role,
		Position:   u.Position,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func FromDataModel(u *identityDatamodel.User) *User {
	return &User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Role:       u.Role,
		Position:   u.Position,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func DepartmentFromDataModel(d *identityDatamodel.Department) *Department {
	return &Department{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}
