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

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{
		requestService: requestService,
		logger:         logger,
	}
}

func (ctrl *RequestController) CreateRequest(c echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных в теле запроса"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.requestService.CreateRequest(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, map[string]uint64{"id": id}, "Заявка успешно создана", http.StatusCreated)
}

// UpdateRequestStatus обслуживает перетаскивание карточки на доске,
// поэтому отвечает плоским {success: true}.
func (ctrl *RequestController) UpdateRequestStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateRequestStatusDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("UpdateRequestStatus: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных в теле запроса"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.requestService.UpdateRequestStatus(c.Request().Context(), id, payload.Status); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, dto.StatusUpdateResultDTO{Success: true})
}
