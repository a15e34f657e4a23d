// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "persona/internal/delivery/context"
	"persona/internal/domain/entity"
	domainerrors "persona/internal/domain/errors"
	"persona/internal/domain/repository"
	"persona/internal/domain/service"
	"persona/internal/usecase"
)

// personService implements the PersonUsecase interface.
type personService struct {
	personRepo repository.PersonRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// NewPersonService is the constructor for personService. It receives all dependencies as interfaces.
func NewPersonService(
	personRepo repository.PersonRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.PersonUsecase {
	return &personService{
		personRepo: personRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *personService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account. The raw password is hashed before the first
// write; a duplicate login surfaces as a conflict.
func (srv *personService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Person, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("login", input.Login))

	hash, err := srv.ensureHashed(input.Password)
	if err != nil {
		return nil, err
	}

	person, err := srv.personRepo.Save(ctx, &entity.Person{
		Login:        input.Login,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrLoginTaken) {
			srv.log(ctx).Warn("Sign-up rejected, login taken", slog.String("login", input.Login))

			return nil, domainerrors.ErrLoginTaken.WrapMessage("sign-up failed")
		}

		return nil, errors.Wrap(err, "failed to save person during sign-up")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Int("id", person.ID))

	return person, nil
}

// List returns every account record.
func (srv *personService) List(ctx context.Context) ([]*entity.Person, error) {
	persons, err := srv.personRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}

	return persons, nil
}

// Get returns a single account by ID.
func (srv *personService) Get(ctx context.Context, id int) (*entity.Person, error) {
	person, err := srv.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound.WrapMessage("get person failed")
		}

		return nil, errors.Wrap(err, "failed to find person")
	}

	return person, nil
}

// Update replaces an existing account. The ID must match an existing row.
// The password value passes through the hash-on-write guard, so a caller
// supplying a raw password here cannot leak it into the store.
func (srv *personService) Update(ctx context.Context, input *usecase.UpdatePersonInput) (*entity.Person, error) {
	srv.log(ctx).Info("Updating person", slog.Int("id", input.ID))

	existing, err := srv.personRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound.WrapMessage("no person found for update")
		}

		return nil, errors.Wrap(err, "failed to find person for update")
	}

	hash, err := srv.ensureHashed(input.Password)
	if err != nil {
		return nil, err
	}

	existing.Login = input.Login
	existing.PasswordHash = hash

	updated, err := srv.personRepo.Save(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrLoginTaken) {
			return nil, domainerrors.ErrLoginTaken.WrapMessage("update failed")
		}

		return nil, errors.Wrap(err, "failed to save person during update")
	}

	return updated, nil
}

// ChangePassword re-hashes and stores a new password for the given login.
// It does not verify the old password first; the source contract takes only
// the login and the new password.
func (srv *personService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.String("login", input.Login))

	person, err := srv.personRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return domainerrors.ErrPersonNotFound.WrapMessage("no person found for update")
		}

		return errors.Wrap(err, "failed to find person for password change")
	}

	hash, err := srv.ensureHashed(input.Password)
	if err != nil {
		return err
	}

	person.PasswordHash = hash
	if _, err := srv.personRepo.Save(ctx, person); err != nil {
		return errors.Wrap(err, "failed to save person during password change")
	}

	return nil
}

// Delete removes an account by ID, translating a miss into a not-found error.
func (srv *personService) Delete(ctx context.Context, id int) error {
	deleted, err := srv.personRepo.DeleteByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete person")
	}
	if !deleted {
		return domainerrors.ErrPersonNotFound.WrapMessage("no persons with this id")
	}

	srv.log(ctx).Debug("Deleted person", slog.Int("id", id))

	return nil
}

// ensureHashed enforces the store invariant that only hashed passwords are
// persisted. Values that already parse as hasher output pass through
// untouched, which keeps the guard idempotent.
func (srv *personService) ensureHashed(password string) (string, error) {
	if srv.hasher.IsHash(password) {
		return password, nil
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.logger.Error("Failed to hash password", slog.Any("error", err))

		return "", domainerrors.ErrPasswordHashFailed.WrapMessage("hash-on-write failed")
	}

	return hash, nil
}
