package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	requestService   services.RequestServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	requestService services.RequestServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		requestService:   requestService,
		logger:           logger,
	}
}

func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Неверный формат ID")
	}
	return id, nil
}

func (ctrl *EquipmentController) GetEquipments(c echo.Context) error {
	var filter dto.EquipmentFilterDTO
	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат ID категории"), ctrl.logger)
		}
		filter.CategoryID = categoryID
	}
	filter.Search = c.QueryParam("q")

	res, err := ctrl.equipmentService.GetEquipments(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Список оборудования успешно получен", http.StatusOK)
}

func (ctrl *EquipmentController) GetActiveEquipments(c echo.Context) error {
	res, err := ctrl.equipmentService.GetActiveEquipments(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Список активного оборудования успешно получен", http.StatusOK)
}

func (ctrl *EquipmentController) FindEquipment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	res, err := ctrl.equipmentService.FindEquipment(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Оборудование успешно найдено", http.StatusOK)
}

// FindEquipmentDetails — плоский JSON для виджета формы заявки.
func (ctrl *EquipmentController) FindEquipmentDetails(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	res, err := ctrl.equipmentService.FindEquipmentDetails(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, res)
}

func (ctrl *EquipmentController) CreateEquipment(c echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных в теле запроса"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.equipmentService.CreateEquipment(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, map[string]uint64{"id": id}, "Оборудование успешно зарегистрировано", http.StatusCreated)
}

func (ctrl *EquipmentController) ScrapEquipment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.equipmentService.ScrapEquipment(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Оборудование списано", http.StatusOK)
}

func (ctrl *EquipmentController) GetEquipmentRequests(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	res, err := ctrl.requestService.GetRequestsByEquipment(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Заявки по оборудованию успешно получены", http.StatusOK)
}
