package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(api *echo.Group, requestCtrl *controllers.RequestController) {
	api.POST("/requests", requestCtrl.CreateRequest)
	api.POST("/requests/:id/status", requestCtrl.UpdateRequestStatus)
}
