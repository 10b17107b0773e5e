// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FirstDayOfWeek represents the user's preferred first day of the week.
// It only affects how the presentation layer labels weekly charts; the
// aggregation engine itself buckets weeks starting on Sunday.
type FirstDayOfWeek string

const (
	FirstDayOfWeekSunday FirstDayOfWeek = "sunday"
	FirstDayOfWeekMonday FirstDayOfWeek = "monday"
)

// User represents an account that owns transactions and categories.
// The user's ID scopes all row-level access.
type User struct {
	ID             uuid.UUID
	Email          string
	Name           string
	PasswordHash   string
	FirstDayOfWeek FirstDayOfWeek
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Email:          email,
		Name:           name,
		PasswordHash:   passwordHash,
		FirstDayOfWeek: FirstDayOfWeekSunday,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
