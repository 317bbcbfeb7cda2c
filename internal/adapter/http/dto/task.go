package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	AuthorID    uint64  `json:"author_id"`
	AssigneeID  *uint64 `json:"assignee_id"`
	Version     uint64  `json:"version"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TaskResponse is a task together with its whole comment thread.
type TaskResponse struct {
	TaskItem
	Comments []CommentItem `json:"comments"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *uint64 `json:"assigneeId" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *uint64 `json:"assigneeId" binding:"omitempty,gt=0"`
}

type ListTasksQuery struct {
	AuthorID   *uint64 `form:"authorId" binding:"omitempty,gt=0"`
	AssigneeID *uint64 `form:"assigneeId" binding:"omitempty,gt=0"`
	Status     *string `form:"status"`
	Priority   *string `form:"priority"`
}
