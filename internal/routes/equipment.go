package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runEquipmentRouter(api *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	api.GET("/equipment", equipmentCtrl.GetEquipments)
	api.GET("/equipment/active", equipmentCtrl.GetActiveEquipments)
	api.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	api.GET("/equipment/:id/details", equipmentCtrl.FindEquipmentDetails)
	api.GET("/equipment/:id/requests", equipmentCtrl.GetEquipmentRequests)
	api.POST("/equipment", equipmentCtrl.CreateEquipment)
	api.POST("/equipment/:id/scrap", equipmentCtrl.ScrapEquipment)
}
