package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"persona/internal/domain/entity"
	domainerrors "persona/internal/domain/errors"
	"persona/internal/domain/repository"
	"persona/internal/infra/persistence/model"
)

// personRepository implements the repository.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
// It returns the repository as a repository.PersonRepository interface, adhering to dependency inversion.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// FindAll retrieves every account row.
func (repo *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	var rows []*model.PersonModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}

	persons := make([]*entity.Person, 0, len(rows))
	for _, row := range rows {
		persons = append(persons, row.ToDomain())
	}

	return persons, nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *personRepository) FindByID(ctx context.Context, id int) (*entity.Person, error) {
	var row model.PersonModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by id")
	}

	return row.ToDomain(), nil
}

// FindByLogin retrieves a single account by its login.
func (repo *personRepository) FindByLogin(ctx context.Context, login string) (*entity.Person, error) {
	var row model.PersonModel
	if err := repo.db.WithContext(ctx).Where("login = ?", login).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by login")
	}

	return row.ToDomain(), nil
}

// Save inserts a new row when the ID is unset, otherwise replaces the
// existing row. Constraint violations are translated to domain errors so the
// service layer never sees database-specific failures.
func (repo *personRepository) Save(ctx context.Context, person *entity.Person) (*entity.Person, error) {
	row := model.FromDomain(person)

	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrLoginTaken
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "missing required person fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save person")
	}

	return row.ToDomain(), nil
}

// DeleteByID removes an account by ID, reporting whether a row was removed.
func (repo *personRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.PersonModel{}, id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete person")
	}

	return result.RowsAffected > 0, nil
}
