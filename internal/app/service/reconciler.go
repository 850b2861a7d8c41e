package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// Reconciler keeps the persisted per-category task counts equal to the
// actual number of tasks referencing each category. It writes only when a
// count has drifted, so running it after every mutation never amplifies
// writes. Count corrections are eventually consistent: an individual
// failure is logged and skipped, never propagated to the mutation that
// triggered the run.
type Reconciler struct {
	categoryRepository ports.CategoryRepository
}

func NewReconciler(categoryRepository ports.CategoryRepository) *Reconciler {
	return &Reconciler{categoryRepository: categoryRepository}
}

// Reconcile returns the category collection with corrected counts. A
// category whose corrective write failed keeps its stale count so the
// next run retries it.
func (r *Reconciler) Reconcile(ctx context.Context, tasks []domain.Task, categories []domain.Category) []domain.Category {
	counts := make(map[string]int, len(categories))
	for _, t := range tasks {
		counts[t.CategoryID]++
	}

	out := make([]domain.Category, len(categories))
	for i, category := range categories {
		out[i] = category

		actual := counts[strconv.Itoa(category.ID)]
		if actual == category.TaskCount {
			continue
		}

		updated, err := r.categoryRepository.UpdateTaskCount(ctx, category.ID, actual)
		if err != nil {
			zap.L().Warn("task count reconciliation failed",
				zap.Int("category_id", category.ID),
				zap.Int("stale_count", category.TaskCount),
				zap.Int("actual_count", actual),
				zap.Error(err),
			)
			continue
		}
		out[i] = updated
	}
	return out
}
