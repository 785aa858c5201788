package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter signup collected by the footer form.
type Subscriber struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Email     string    `json:"email" db:"email"`
	Language  string    `json:"language" db:"language"`
}
