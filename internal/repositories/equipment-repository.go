package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]dto.EquipmentListItemDTO, error)
	GetActiveEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindEquipmentDetails(ctx context.Context, id uint64) (*dto.EquipmentDetailsDTO, error)
	CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error)
	ScrapEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

const equipmentFields = "id, name, serial_number, department, owner_name, location, purchase_date, warranty_info, is_scrapped, team_id, category_id, default_technician_id"

// GetEquipments возвращает все активы; фильтр по категории и поиск по
// подстроке (имя ИЛИ серийный номер, без учёта регистра) опциональны.
func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]dto.EquipmentListItemDTO, error) {
	builder := sq.Select(
		"e.id", "e.name", "e.serial_number", "e.department", "e.location", "e.is_scrapped",
		"c.name AS category_name", "t.name AS team_name",
	).
		From("equipments e").
		LeftJoin("categories c ON c.id = e.category_id").
		LeftJoin("teams t ON t.id = e.team_id").
		OrderBy("e.id")

	if filter.CategoryID > 0 {
		builder = builder.Where(sq.Eq{"e.category_id": filter.CategoryID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"e.name": pattern},
			sq.ILike{"e.serial_number": pattern},
		})
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка оборудования: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка оборудования: %w", err)
	}
	defer rows.Close()

	items := make([]dto.EquipmentListItemDTO, 0)
	for rows.Next() {
		var item dto.EquipmentListItemDTO
		err := rows.Scan(
			&item.ID, &item.Name, &item.SerialNumber, &item.Department,
			&item.Location, &item.IsScrapped,
			&item.CategoryName, &item.TeamName,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования оборудования в списке: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetActiveEquipments — только несписанные активы, для формы новой заявки.
func (r *EquipmentRepository) GetActiveEquipments(ctx context.Context) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipments WHERE is_scrapped = FALSE ORDER BY name`, equipmentFields)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения активного оборудования: %w", err)
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		err := rows.Scan(
			&e.ID, &e.Name, &e.SerialNumber, &e.Department, &e.OwnerName, &e.Location,
			&e.PurchaseDate, &e.WarrantyInfo, &e.IsScrapped,
			&e.TeamID, &e.CategoryID, &e.DefaultTechnicianID,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования оборудования: %w", err)
		}
		equipments = append(equipments, e)
	}
	return equipments, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipments WHERE id = $1`, equipmentFields)

	var e entities.Equipment
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Department, &e.OwnerName, &e.Location,
		&e.PurchaseDate, &e.WarrantyInfo, &e.IsScrapped,
		&e.TeamID, &e.CategoryID, &e.DefaultTechnicianID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования оборудования: %w", err)
	}
	return &e, nil
}

// FindEquipmentDetails собирает данные для виджета формы заявки одним
// запросом с JOIN вместо ленивых переходов по связям.
func (r *EquipmentRepository) FindEquipmentDetails(ctx context.Context, id uint64) (*dto.EquipmentDetailsDTO, error) {
	query := `
		SELECT
			e.department,
			COALESCE(t.name, 'N/A'),
			COALESCE(c.name, 'N/A'),
			COALESCE(u.name, 'Default')
		FROM equipments e
			LEFT JOIN teams t ON t.id = e.team_id
			LEFT JOIN categories c ON c.id = e.category_id
			LEFT JOIN users u ON u.id = e.default_technician_id
		WHERE e.id = $1`

	var details dto.EquipmentDetailsDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&details.Department, &details.TeamName, &details.CategoryName, &details.Technician,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования карточки оборудования: %w", err)
	}
	return &details, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error) {
	query := `
		INSERT INTO equipments (name, serial_number, department, owner_name, location, warranty_info, team_id, category_id, default_technician_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		eq.Name, eq.SerialNumber, eq.Department, eq.OwnerName, eq.Location,
		eq.WarrantyInfo, eq.TeamID, eq.CategoryID, eq.DefaultTechnicianID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("ошибка создания оборудования: %w", err)
	}
	return id, nil
}

// ScrapEquipment помечает актив списанным. Обратной операции нет.
func (r *EquipmentRepository) ScrapEquipment(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, `UPDATE equipments SET is_scrapped = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка списания оборудования: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
