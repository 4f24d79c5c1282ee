package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runCategoryRouter(api *echo.Group, categoryCtrl *controllers.CategoryController) {
	api.GET("/categories", categoryCtrl.GetCategories)
}
