// Package model contains the GORM persistence models mirroring database tables.
package model

import (
	"time"

	"persona/internal/domain/entity"
)

// PersonModel mirrors the 'person' table. Login uniqueness is enforced by a
// unique index so concurrent sign-ups with the same login cannot race past the
// application-level check.
type PersonModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Login     string `gorm:"type:varchar(15);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "person"
}

// ToDomain converts the persistence model to a pure domain entity.
func (m *PersonModel) ToDomain() *entity.Person {
	if m == nil {
		return nil
	}

	return &entity.Person{
		ID:           m.ID,
		Login:        m.Login,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts a domain entity to a persistence model.
func FromDomain(p *entity.Person) *PersonModel {
	if p == nil {
		return nil
	}

	return &PersonModel{
		ID:       p.ID,
		Login:    p.Login,
		Password: p.PasswordHash,
	}
}
