package dto

type TaskItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	CategoryID  string  `json:"category_id"`
	Priority    int     `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	CategoryID  string  `json:"category_id" binding:"required"`
	Priority    *int    `json:"priority" binding:"omitempty,oneof=1 2 3"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	CategoryID  *string `json:"category_id"`
	Priority    *int    `json:"priority" binding:"omitempty,oneof=1 2 3"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}

type QuickAddRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}
