package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	AuthorName string     `gorm:"type:varchar(150);not null"`
	Rating     int        `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Body       string     `gorm:"type:text;not null"`
	Status     string     `gorm:"type:varchar(20);not null;default:pending;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
