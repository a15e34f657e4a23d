package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "persona/internal/delivery/context"
	domainerrors "persona/internal/domain/errors"
	"persona/internal/domain/repository"
	"persona/internal/domain/service"
	"persona/internal/usecase"
)

// authService implements the AuthUsecase interface: load the account, verify
// the password, issue a token.
type authService struct {
	personRepo   repository.PersonRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	personRepo repository.PersonRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		personRepo:   personRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a bearer token. An unknown login
// and a wrong password both exit through the same ErrInvalidCredentials; the
// distinction exists only in server logs.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	person, err := srv.personRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			srv.log(ctx).Warn("Login rejected, unknown login", slog.String("login", input.Login))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load person during login")
	}

	if !srv.hasher.Check(input.Password, person.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.String("login", input.Login))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(person.Login)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("login", person.Login))

	return &usecase.LoginOutput{Token: token}, nil
}
