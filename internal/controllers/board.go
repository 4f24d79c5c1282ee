package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type BoardController struct {
	boardService services.BoardServiceInterface
	logger       *zap.Logger
}

func NewBoardController(boardService services.BoardServiceInterface, logger *zap.Logger) *BoardController {
	return &BoardController{
		boardService: boardService,
		logger:       logger,
	}
}

func (ctrl *BoardController) GetKanbanBoard(c echo.Context) error {
	res, err := ctrl.boardService.GetKanbanBoard(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Доска успешно получена", http.StatusOK)
}

// GetCalendarEvents отвечает голым массивом — этого ждёт календарь.
func (ctrl *BoardController) GetCalendarEvents(c echo.Context) error {
	res, err := ctrl.boardService.GetCalendarEvents(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, res)
}
