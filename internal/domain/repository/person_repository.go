// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"persona/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrPersonNotFound is returned when no account matches the given id or login.
	ErrPersonNotFound = errors.New("person not found")
	// ErrLoginTaken is returned when a save would violate login uniqueness.
	ErrLoginTaken = errors.New("login already taken")
)

// PersonRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type PersonRepository interface {
	// FindAll retrieves every account record in the store.
	FindAll(ctx context.Context) ([]*entity.Person, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id int) (*entity.Person, error)

	// FindByLogin retrieves a single account by its login.
	FindByLogin(ctx context.Context, login string) (*entity.Person, error)

	// Save inserts the account when its ID is unset, otherwise replaces the
	// existing row. The returned entity carries the store-assigned ID.
	Save(ctx context.Context, person *entity.Person) (*entity.Person, error)

	// DeleteByID removes an account by ID. It reports whether a row existed
	// and was removed; a miss is not an error.
	DeleteByID(ctx context.Context, id int) (bool, error)
}
