package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runReportRouter(api *echo.Group, reportCtrl *controllers.ReportController) {
	api.GET("/reports/equipment", reportCtrl.GetEquipmentRegistry)
}
