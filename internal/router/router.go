package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"estore/internal/handler"
	"estore/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	inventoryHandler *handler.InventoryHandler,
	issueHandler *handler.IssueHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))
	e.Use(metrics.Middleware)

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/signin", authHandler.Signin)
	api.POST("/issues", issueHandler.CreateIssue)
	api.GET("/issues", issueHandler.ListIssues)

	// Item routes keep their historical top-level path.
	e.GET("/Store-Items", inventoryHandler.ListItems)
	e.POST("/Store-Items", inventoryHandler.CreateItem)
	e.GET("/Store-Items/:id", inventoryHandler.GetItem)
	e.PUT("/Store-Items/:id", inventoryHandler.UpdateItem)
	e.DELETE("/Store-Items/:id", inventoryHandler.DeleteItem)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
