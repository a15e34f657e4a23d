package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"persona/config"
	domainerrors "persona/internal/domain/errors"
	"persona/internal/errors"
	"persona/internal/infra/auth"
	"persona/internal/infra/persistence/memory"
	"persona/internal/usecase"
)

// authServiceFixtures wires the authenticator against real collaborators.
type authServiceFixtures struct {
	persons usecase.PersonUsecase
	auth    usecase.AuthUsecase
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"

	repo := memory.NewPersonRepository()
	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authServiceFixtures{
		persons: NewPersonService(repo, hasher, logger),
		auth:    NewAuthService(repo, hasher, tokenService, logger),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.persons.SignUp(ctx, &usecase.SignUpInput{Login: "alice01", Password: "secretpw"})
	require.NoError(t, err)

	output, err := fx.auth.Login(ctx, &usecase.LoginInput{Login: "alice01", Password: "secretpw"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.Token, "Bearer "))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.persons.SignUp(ctx, &usecase.SignUpInput{Login: "alice01", Password: "secretpw"})
	require.NoError(t, err)

	output, err := fx.auth.Login(ctx, &usecase.LoginInput{Login: "alice01", Password: "wrongpw1"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownLogin(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.auth.Login(context.Background(), &usecase.LoginInput{Login: "nobody1", Password: "secretpw"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// An unknown login and a wrong password must be indistinguishable to the
// caller: same error value, same message.
func TestAuthService_Login_UniformRejection(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.persons.SignUp(ctx, &usecase.SignUpInput{Login: "alice01", Password: "secretpw"})
	require.NoError(t, err)

	_, unknownLoginErr := fx.auth.Login(ctx, &usecase.LoginInput{Login: "nobody1", Password: "secretpw"})
	_, wrongPasswordErr := fx.auth.Login(ctx, &usecase.LoginInput{Login: "alice01", Password: "wrongpw1"})

	require.Error(t, unknownLoginErr)
	require.Error(t, wrongPasswordErr)
	assert.True(t, errors.Is(unknownLoginErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, errors.Cause(unknownLoginErr), errors.Cause(wrongPasswordErr))
}

func TestAuthService_LoginAfterPasswordChange(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.persons.SignUp(ctx, &usecase.SignUpInput{Login: "alice01", Password: "secretpw"})
	require.NoError(t, err)

	err = fx.persons.ChangePassword(ctx, &usecase.ChangePasswordInput{Login: "alice01", Password: "newpass1"})
	require.NoError(t, err)

	_, err = fx.auth.Login(ctx, &usecase.LoginInput{Login: "alice01", Password: "secretpw"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	output, err := fx.auth.Login(ctx, &usecase.LoginInput{Login: "alice01", Password: "newpass1"})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
}
