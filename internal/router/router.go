package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eksiblog/internal/auth"
	"eksiblog/internal/config"
	"eksiblog/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Merhaba, Ekşi Sunucuya hoşgeldiniz!")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// Secured routes (require a bearer session token)
	secured := e.Group("", auth.Guard(cfg.JWTSecret))

	secured.PATCH("/auth/change-password", authHandler.ChangePassword)
	secured.POST("/posts", postHandler.Create)
	secured.GET("/posts", postHandler.List)
	secured.PATCH("/change_post", postHandler.Update)
	secured.DELETE("/delete_post", postHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
