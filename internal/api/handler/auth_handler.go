package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grandstay/hotel-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges a username and password for a bearer token.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: res.AccessToken, TokenType: res.TokenType})
}

// Protected is an example endpoint that only answers to a valid bearer token.
//
// @Summary      Check a bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  protectedResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/token/protected [get]
func (h *AuthHandler) Protected(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, protectedResponse{User: subject, Message: "You are authorized"})
}
