// Package model holds the GORM structs mirroring the relational schema.
// The types are exported so the GORM Gen tool can read them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The id equals the auth provider's subject
// and is written by the signup trigger, so it has no database default.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:user;index"`
	FullName  *string   `gorm:"type:varchar(150)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
