package router

import (
	"github.com/labstack/echo/v4"

	"rotopt/pkg/middleware"
)

func New(
	e *echo.Echo,
	requireAuth bool,
	fieldCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
	},
	rotationGenerate func(echo.Context) error,
	rotationList func(echo.Context) error,
	historyCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	// Identified routes: header-based auth when required, dev cookie otherwise.
	authMW := middleware.DevLogin()
	if requireAuth {
		authMW = middleware.RequireUID(true)
	}
	api := e.Group("", authMW)

	api.GET("/whoami", authCtrl.WhoAmI)
	e.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields/:id", fieldCtrl.Get)

	api.POST("/fields/:id/rotation", rotationGenerate)
	api.GET("/fields/:id/rotation", rotationList)

	api.POST("/fields/:id/history", historyCtrl.Create)
	api.GET("/fields/:id/history", historyCtrl.List)

	return e
}
