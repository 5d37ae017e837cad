package models

import (
	"time"
)

// UserDB represents a user record in the database.
// The password hash is never serialized to JSON.
type UserDB struct {
	UserID       int64     `json:"id" db:"user_id"`           // Primary key
	Name         string    `json:"name" db:"name"`            // Display name
	Email        string    `json:"email" db:"email"`          // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`      // Hashed password
	Roles        []string  `json:"roles" db:"-"`              // Attached role names
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// RoleDB represents a role record in the database.
// Roles are immutable reference data looked up by name.
type RoleDB struct {
	RoleID int64  `json:"id" db:"role_id"` // Primary key
	Name   string `json:"name" db:"name"`  // Unique role name
}
