package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

var (
	ErrInvalidTaskPayload     = errors.New("invalid task payload")
	ErrInvalidCategoryPayload = errors.New("invalid category payload")
)

const dueDateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if strings.TrimSpace(req.CategoryID) == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	input := domain.CreateTaskInput{
		Title:      title,
		CategoryID: strings.TrimSpace(req.CategoryID),
		Priority:   priority,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.DueDate != nil {
		due, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &due
	}
	return input, nil
}

// BuildTaskPatch distinguishes absent fields from explicit nulls using
// the raw message map, so "clear the due date" survives the round trip.
func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	var patch domain.TaskPatch

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Title = &title
	}

	if hasJSONField(raw, "description") {
		if isJSONNull(raw["description"]) {
			empty := ""
			patch.Description = &empty
		} else if req.Description == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		} else {
			patch.Description = req.Description
		}
	}

	if hasJSONField(raw, "category_id") {
		if req.CategoryID == nil || strings.TrimSpace(*req.CategoryID) == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		cid := strings.TrimSpace(*req.CategoryID)
		patch.CategoryID = &cid
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}

	if hasJSONField(raw, "due_date") {
		patch.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			due, err := time.Parse(dueDateLayout, *req.DueDate)
			if err != nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			patch.DueDate = &due
		}
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Completed = req.Completed
	}

	return patch, nil
}

func BuildCategoryPatch(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.CategoryPatch, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "color") {
		return domain.CategoryPatch{}, ErrInvalidCategoryPayload
	}

	var patch domain.CategoryPatch

	if hasJSONField(raw, "name") {
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			return domain.CategoryPatch{}, ErrInvalidCategoryPayload
		}
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}

	if hasJSONField(raw, "color") {
		if req.Color == nil || !domain.ValidCategoryColor(*req.Color) {
			return domain.CategoryPatch{}, ErrInvalidCategoryPayload
		}
		patch.Color = req.Color
	}

	return patch, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "category_id") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "completed")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
