// Package store holds the session's working set of entities. It is a
// plain constructed object, one per session or test, so nothing hides in
// package state. All mutation happens through repository-result handlers
// on the session's single event path; the store itself does not lock.
package store

import "taskflow/internal/core/domain"

type EntityStore struct {
	tasks      []domain.Task
	categories []domain.Category
}

func NewEntityStore() *EntityStore {
	return &EntityStore{}
}

func (s *EntityStore) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *EntityStore) Categories() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *EntityStore) ReplaceTasks(tasks []domain.Task) {
	s.tasks = make([]domain.Task, len(tasks))
	copy(s.tasks, tasks)
}

func (s *EntityStore) ReplaceCategories(categories []domain.Category) {
	s.categories = make([]domain.Category, len(categories))
	copy(s.categories, categories)
}

func (s *EntityStore) TaskByID(id int) (domain.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// SetTask upserts by id: existing tasks are replaced in place, new ones
// appended, so list order stays stable across updates.
func (s *EntityStore) SetTask(task domain.Task) {
	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task
			return
		}
	}
	s.tasks = append(s.tasks, task)
}

func (s *EntityStore) RemoveTask(id int) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

func (s *EntityStore) CategoryByID(id int) (domain.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

func (s *EntityStore) SetCategory(category domain.Category) {
	for i, c := range s.categories {
		if c.ID == category.ID {
			s.categories[i] = category
			return
		}
	}
	s.categories = append(s.categories, category)
}

func (s *EntityStore) RemoveCategory(id int) {
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return
		}
	}
}
