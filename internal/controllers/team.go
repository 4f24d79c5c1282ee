package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(teamService services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{
		teamService: teamService,
		logger:      logger,
	}
}

func (ctrl *TeamController) GetTeams(c echo.Context) error {
	res, err := ctrl.teamService.GetTeams(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Список команд успешно получен", http.StatusOK)
}

func (ctrl *TeamController) GetTeamDetail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	res, err := ctrl.teamService.GetTeamDetail(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Команда успешно найдена", http.StatusOK)
}

func (ctrl *TeamController) UpdateTeam(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateTeamDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("UpdateTeam: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных в теле запроса"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.teamService.UpdateTeam(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Команда успешно обновлена", http.StatusOK)
}
