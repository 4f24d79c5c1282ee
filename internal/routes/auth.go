package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

func runAuthRouter(e *echo.Echo, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	e.POST("/signup", authCtrl.Signup)
	e.POST("/login", authCtrl.Login)
	e.POST("/logout", authCtrl.Logout, authMW.Auth)
}
