// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"persona/internal/delivery/http/response"
	"persona/internal/usecase"
)

// PersonHandler holds dependencies for the account endpoints.
type PersonHandler struct {
	personUC usecase.PersonUsecase
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler, injected by Fx.
func NewPersonHandler(personUC usecase.PersonUsecase, authUC usecase.AuthUsecase, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		personUC: personUC,
		authUC:   authUC,
		logger:   logger,
	}
}

// SignUp handles account registration.
func (h *PersonHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Some of fields empty", err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.personUC.SignUp(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// Login handles the authentication entry point. On success the token is
// returned both in the Authorization response header and in the body.
func (h *PersonHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Some of fields empty", err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Authorization", output.Token)

	return c.JSON(http.StatusOK, output)
}

// FindAll returns every account record.
func (h *PersonHandler) FindAll(c echo.Context) error {
	persons, err := h.personUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, persons)
}

// FindByID returns a single account or 404.
func (h *PersonHandler) FindByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid id", err.Error())
	}

	person, err := h.personUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, person)
}

// Update performs a full replace of an existing account.
func (h *PersonHandler) Update(c echo.Context) error {
	var input usecase.UpdatePersonInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Some of fields empty", err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.personUC.Update(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// ChangePassword updates the password of the account with the given login.
func (h *PersonHandler) ChangePassword(c echo.Context) error {
	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Some of fields empty", err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.personUC.ChangePassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// Delete removes an account by id.
func (h *PersonHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid id", err.Error())
	}

	if err := h.personUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
