// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the identity record of an authenticated principal. Every principal has exactly one.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	FullName  *string   `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the full name, falling back to the email.
func (p *Profile) DisplayName() string {
	if p == nil {
		return GuestName
	}
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}

	return p.Email
}

// Principal is the resolved caller of a request.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// Placeholders rendered for records whose owner no longer exists.
const (
	GuestName  = "Guest"
	GuestEmail = "-"
)
