package service

import (
	"context"
	"strings"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepository.GetAll(ctx)
}

func (s *CategoryService) Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.Category{}, &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if !domain.ValidCategoryColor(input.Color) {
		return domain.Category{}, &domain.ValidationError{Field: "color", Message: "unknown color key"}
	}
	return s.categoryRepository.Create(ctx, input)
}

func (s *CategoryService) Update(ctx context.Context, id int, patch domain.CategoryPatch) (domain.Category, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Category{}, &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if patch.Color != nil && !domain.ValidCategoryColor(*patch.Color) {
		return domain.Category{}, &domain.ValidationError{Field: "color", Message: "unknown color key"}
	}
	return s.categoryRepository.Update(ctx, id, patch)
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.categoryRepository.Delete(ctx, id)
}

func (s *CategoryService) UpdateTaskCount(ctx context.Context, categoryID int, count int) (domain.Category, error) {
	return s.categoryRepository.UpdateTaskCount(ctx, categoryID, count)
}
