package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/api/metrics"
	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/core/ports"
)

// todosPath is where a browser lands after a successful cookie login.
const todosPath = "/todos"

// AuthHandler exposes the session and registration flows over both
// deployment modes. Token is the bearer entry point, Login/Logout the
// cookie ones; Register is shared.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

// Token authenticates form credentials and returns a bearer token.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, _, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect username or password"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login authenticates form credentials, sets the HTTP-only access_token
// cookie and redirects to the todos page. Failure stays on the login page
// with one generic message for every cause.
//
// @Summary      Browser login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	if username == "" {
		// The original login form posts the username under "email".
		username = c.FormValue("email")
	}
	password := c.FormValue("password")

	token, _, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusOK, messageResponse{Msg: "incorrect username or password"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, todosPath)
}

// Logout deletes the access_token cookie. Tokens are stateless, so there is
// nothing to do server-side: a copy of the token kept elsewhere stays valid
// until it expires.
//
// @Summary      Browser logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.JSON(http.StatusOK, messageResponse{Msg: "logout successful"})
}

// Register creates an account from the registration form. Every violation
// (mismatched confirmation, taken username, taken email) surfaces as the
// same generic 400.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email      formData  string  true   "Email"
// @Param        username   formData  string  true   "Username"
// @Param        firstname  formData  string  true   "First name"
// @Param        lastname   formData  string  false  "Last name"
// @Param        password   formData  string  true   "Password"
// @Param        password2  formData  string  true   "Password confirmation"
// @Success      201  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	input := ports.RegisterInput{
		Email:           c.FormValue("email"),
		Username:        c.FormValue("username"),
		FirstName:       c.FormValue("firstname"),
		LastName:        c.FormValue("lastname"),
		PhoneNumber:     c.FormValue("phone_number"),
		Password:        c.FormValue("password"),
		PasswordConfirm: c.FormValue("password2"),
	}

	if _, err := h.authService.Register(c.Request().Context(), input); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Msg: "user successfully created"})
}
