// Package memory provides an in-memory PersonRepository used by tests and
// local development. It mirrors the postgres implementation's contract,
// including login uniqueness.
package memory

import (
	"context"
	"sort"
	"sync"

	"persona/internal/domain/entity"
	"persona/internal/domain/repository"
)

// personRepository is a mutex-guarded map keyed by account ID.
type personRepository struct {
	mu     sync.RWMutex
	nextID int
	rows   map[int]entity.Person
}

// NewPersonRepository is the constructor for the in-memory repository.
func NewPersonRepository() repository.PersonRepository {
	return &personRepository{
		nextID: 1,
		rows:   make(map[int]entity.Person),
	}
}

// FindAll returns every stored account ordered by ID.
func (repo *personRepository) FindAll(_ context.Context) ([]*entity.Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	persons := make([]*entity.Person, 0, len(repo.rows))
	for id := range repo.rows {
		row := repo.rows[id]
		persons = append(persons, &row)
	}
	sort.Slice(persons, func(i, j int) bool { return persons[i].ID < persons[j].ID })

	return persons, nil
}

// FindByID retrieves a single account by ID.
func (repo *personRepository) FindByID(_ context.Context, id int) (*entity.Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	row, ok := repo.rows[id]
	if !ok {
		return nil, repository.ErrPersonNotFound
	}

	return &row, nil
}

// FindByLogin retrieves a single account by login.
func (repo *personRepository) FindByLogin(_ context.Context, login string) (*entity.Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for id := range repo.rows {
		if repo.rows[id].Login == login {
			row := repo.rows[id]

			return &row, nil
		}
	}

	return nil, repository.ErrPersonNotFound
}

// Save inserts when the ID is unset or unknown, otherwise replaces.
// The uniqueness check and the write happen under one lock, matching the
// atomicity the unique index gives the postgres implementation.
func (repo *personRepository) Save(_ context.Context, person *entity.Person) (*entity.Person, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for id := range repo.rows {
		if repo.rows[id].Login == person.Login && id != person.ID {
			return nil, repository.ErrLoginTaken
		}
	}

	stored := *person
	if stored.ID == 0 {
		stored.ID = repo.nextID
	}
	if stored.ID >= repo.nextID {
		repo.nextID = stored.ID + 1
	}
	repo.rows[stored.ID] = stored

	return &stored, nil
}

// DeleteByID removes an account, reporting whether it existed.
func (repo *personRepository) DeleteByID(_ context.Context, id int) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.rows[id]; !ok {
		return false, nil
	}
	delete(repo.rows, id)

	return true, nil
}
