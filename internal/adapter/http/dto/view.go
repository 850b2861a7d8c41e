package dto

type FilterState struct {
	Status    string `json:"status"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

type CountState struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type ViewResponse struct {
	Tasks            []TaskItem  `json:"tasks"`
	Counts           CountState  `json:"counts"`
	Filters          FilterState `json:"filters"`
	SelectedCategory string      `json:"selected_category"`
}

type ChangeFilterRequest struct {
	Key   string `json:"key" binding:"required,oneof=status category priority sortBy sortOrder"`
	Value string `json:"value" binding:"required"`
}
