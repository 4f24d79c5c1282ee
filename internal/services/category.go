package services

import (
	"context"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context) ([]entities.Category, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]entities.Category, error) {
	return s.categoryRepo.GetCategories(ctx)
}
