package records

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type CategoryRepository struct {
	store ports.RecordStore
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(store ports.RecordStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	raw, err := r.store.FetchAll(ctx, ports.KindCategory)
	if err != nil {
		zap.L().Warn("failed to fetch categories, degrading to empty", zap.Error(err))
		return []domain.Category{}, nil
	}

	categories := make([]domain.Category, 0, len(raw))
	for _, rec := range raw {
		category, err := decodeCategory(rec)
		if err != nil {
			zap.L().Warn("skipping malformed category record", zap.Error(err))
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (domain.Category, error) {
	raw, err := r.store.FetchOne(ctx, ports.KindCategory, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return decodeCategory(raw)
}

// Create persists a new category. A fresh category starts at count zero;
// reconciliation takes over from there.
func (r *CategoryRepository) Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	category := domain.Category{Name: input.Name, Color: input.Color}

	res, err := r.store.CreateOne(ctx, ports.KindCategory, encodeCategory(category))
	if err != nil {
		return domain.Category{}, err
	}
	rec, err := firstRecord(res)
	if err != nil {
		return domain.Category{}, err
	}
	return decodeCategory(rec)
}

func (r *CategoryRepository) Update(ctx context.Context, id int, patch domain.CategoryPatch) (domain.Category, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}

	updated := domain.ApplyCategoryPatch(current, patch)

	res, err := r.store.UpdateOne(ctx, ports.KindCategory, encodeCategory(updated))
	if err != nil {
		return domain.Category{}, err
	}
	rec, err := firstRecord(res)
	if err != nil {
		return domain.Category{}, err
	}
	return decodeCategory(rec)
}

// Delete does not cascade: tasks keep their categoryId and simply stop
// resolving to a category.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.store.DeleteOne(ctx, ports.KindCategory, []int{id})
	if err != nil {
		return err
	}
	if _, failed := splitBatch(res); len(failed) == len(res.Results) && len(failed) > 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// UpdateTaskCount sets the derived count field. Idempotent: setting the
// same count twice is harmless.
func (r *CategoryRepository) UpdateTaskCount(ctx context.Context, categoryID int, count int) (domain.Category, error) {
	current, err := r.GetByID(ctx, categoryID)
	if err != nil {
		return domain.Category{}, err
	}
	current.TaskCount = count

	res, err := r.store.UpdateOne(ctx, ports.KindCategory, encodeCategory(current))
	if err != nil {
		return domain.Category{}, err
	}
	rec, err := firstRecord(res)
	if err != nil {
		return domain.Category{}, err
	}
	return decodeCategory(rec)
}
