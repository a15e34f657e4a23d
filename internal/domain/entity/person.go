// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Person is the sole persisted entity in the system: one account record.
// The ID is assigned by the store on first save and is immutable afterwards.
// PasswordHash always holds the output of the password hasher; the raw
// password never reaches the store and is never serialized in responses.
type Person struct {
	ID           int       `json:"id"`        // Store-generated primary key.
	Login        string    `json:"login"`     // Unique login identifier, 3-15 characters.
	PasswordHash string    `json:"-"`         // Bcrypt hash of the password.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification.
}
