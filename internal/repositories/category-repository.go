package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
)

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]entities.Category, error)
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]entities.Category, error) {
	rows, err := r.storage.Query(ctx, `SELECT id, name, description FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка категорий: %w", err)
	}
	defer rows.Close()

	categories := make([]entities.Category, 0)
	for rows.Next() {
		var c entities.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("ошибка сканирования категории: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
