package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runNotificationRouter(api *echo.Group, notificationCtrl *controllers.NotificationController) {
	api.GET("/notifications", notificationCtrl.GetNotifications)
	api.POST("/notifications/mark-read", notificationCtrl.MarkAllRead)
}
