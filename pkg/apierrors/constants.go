package apierrors

const (
	MsgFailListTasks          = "errorListTasks"
	MsgInvalidTaskID          = "invalidTaskID"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgTaskNotFound           = "taskNotFound"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailUpdateTask         = "failUpdateTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgFailToggleTask         = "failToggleTask"
	MsgFailListCategories     = "errorListCategories"
	MsgInvalidCategoryID      = "invalidCategoryID"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgFailCreateCategory     = "failCreateCategory"
	MsgFailUpdateCategory     = "failUpdateCategory"
	MsgFailDeleteCategory     = "failDeleteCategory"
	MsgInvalidFilterPayload   = "invalidFilterPayload"
)
