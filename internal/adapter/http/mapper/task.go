package mapper

import (
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/view"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CategoryID:  task.CategoryID,
		Priority:    int(task.Priority),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	return item
}

func ToViewResponse(v view.View, f view.Filters, selectedCategory string) dto.ViewResponse {
	return dto.ViewResponse{
		Tasks: ToTaskItems(v.Visible),
		Counts: dto.CountState{
			All:       v.Counts.All,
			Active:    v.Counts.Active,
			Completed: v.Counts.Completed,
		},
		Filters: dto.FilterState{
			Status:    f.Status,
			Category:  f.Category,
			Priority:  f.Priority,
			SortBy:    f.SortBy,
			SortOrder: f.SortOrder,
		},
		SelectedCategory: selectedCategory,
	}
}
