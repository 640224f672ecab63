package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/taskhub/todo-api/internal/api/handler"
	"github.com/taskhub/todo-api/internal/api/middleware"
	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/core/service"
	"github.com/taskhub/todo-api/internal/infrastructure/config"
	"github.com/taskhub/todo-api/internal/infrastructure/db/postgres"
	healthhandlers "github.com/taskhub/todo-api/internal/infrastructure/http/handlers"
)

const loginPath = "/auth/login"

// NewRouter builds and returns the Echo instance with all routes registered.
// The auth transport (bearer vs cookie) is a deployment choice made here,
// once: the two strategies have different failure contracts and are never
// mixed within one process.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	codec := auth.NewCodec(cfg.JWTSecret)

	userRepo := postgres.NewUserRepository(pool)
	todoRepo := postgres.NewTodoRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)

	authService := service.NewAuthService(userRepo, codec, cfg.TokenTTL, cfg.BcryptCost, log)
	todoService := service.NewTodoService(todoRepo, log)
	addressService := service.NewAddressService(addressRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	addressHandler := handler.NewAddressHandler(addressService)

	// --- Auth routes (mode-dependent) ---
	var protect echo.MiddlewareFunc
	if cfg.AuthMode == config.AuthModeCookie {
		resolver := auth.NewResolver(codec, auth.CookieToken)
		protect = middleware.Cookie(resolver, loginPath)

		// Stand-in for the login page; unauthenticated browsers land here.
		e.GET(loginPath, func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"msg": "login required"})
		})
		e.POST(loginPath, authHandler.Login)
		e.GET("/auth/logout", authHandler.Logout)
	} else {
		resolver := auth.NewResolver(codec, auth.BearerToken)
		protect = middleware.Bearer(resolver)

		e.POST("/auth/token", authHandler.Token)
	}
	e.POST("/auth/register", authHandler.Register)

	// --- Protected routes ---
	users := e.Group("/users", protect)
	users.GET("/me", userHandler.Me)
	users.DELETE("/me", userHandler.Delete)
	users.PUT("/password", userHandler.ChangePassword)

	todos := e.Group("/todos", protect)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.GET("/:id", todoHandler.Get)
	todos.PUT("/:id", todoHandler.Update)
	todos.PATCH("/:id/complete", todoHandler.ToggleComplete)
	todos.DELETE("/:id", todoHandler.Delete)

	address := e.Group("/address", protect)
	address.POST("", addressHandler.Create)
	address.GET("", addressHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
