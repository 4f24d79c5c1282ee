package services

import (
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type ReportServiceInterface interface {
	BuildEquipmentRegistry(ctx context.Context) (*excelize.File, error)
}

type ReportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewReportService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{equipmentRepo: equipmentRepo, logger: logger}
}

var registryHeaders = []interface{}{
	"ID", "Название", "Серийный номер", "Подразделение", "Локация", "Категория", "Команда", "Списано",
}

// BuildEquipmentRegistry собирает XLSX-реестр всего оборудования.
func (s *ReportService) BuildEquipmentRegistry(ctx context.Context) (*excelize.File, error) {
	items, err := s.equipmentRepo.GetEquipments(ctx, dto.EquipmentFilterDTO{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Реестр оборудования"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &registryHeaders)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, item := range items {
		scrapped := "нет"
		if item.IsScrapped {
			scrapped = "да"
		}
		row := []interface{}{
			item.ID, item.Name, item.SerialNumber, item.Department, item.Location,
			item.CategoryName.String, item.TeamName.String, scrapped,
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "G", 20)

	s.logger.Info("Сформирован реестр оборудования", zap.Int("rows", len(items)))
	return f, nil
}
