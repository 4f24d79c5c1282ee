package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runDashboardRouter(api *echo.Group, dashboardCtrl *controllers.DashboardController) {
	api.GET("/dashboard", dashboardCtrl.GetDashboard)
	api.GET("/analytics/teams", dashboardCtrl.GetTeamAnalytics)
}
