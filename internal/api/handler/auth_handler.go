package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/api/middleware"
	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type loginResponse struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	AccessToken string      `json:"accessToken"`
}

type userResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new customer account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Validation failed")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User was registered successfully"})
}

// Login verifies credentials and issues an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /auth/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Validation failed")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		AccessToken: token,
	})
}

// ChangePassword overwrites the caller's stored password hash after verifying
// the old password. The caller identity comes from the auth middleware, never
// from the request body.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /auth/user/changePassword [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Old password and new password are required.")
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Old password and new password are required.")
	}

	userID, _ := c.Get(middleware.ContextUserID).(string)
	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password changed successfully."})
}

// GetUser returns a single user by id.
//
// @Summary      Get a user by id
// @Tags         auth
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  userResponse
// @Failure      404     {object}  messageResponse
// @Failure      500     {object}  messageResponse
// @Router       /auth/user/{userId} [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	user, err := h.authService.GetUserByID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// ListUsers returns every registered user. Manager only.
//
// @Summary      List all users
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role})
	}
	return c.JSON(http.StatusOK, out)
}
