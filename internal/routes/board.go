package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runBoardRouter(api *echo.Group, boardCtrl *controllers.BoardController) {
	api.GET("/kanban", boardCtrl.GetKanbanBoard)
	api.GET("/events", boardCtrl.GetCalendarEvents)
}
