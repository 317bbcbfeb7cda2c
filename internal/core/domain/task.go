package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task references its author and assignee by user id only.
type Task struct {
	ID          uint64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	AuthorID    uint64
	AssigneeID  *uint64
	Version     uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Task) IsAuthor(userID uint64) bool {
	return t.AuthorID == userID
}

func (t Task) IsAssignee(userID uint64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// TaskView is the listing read-model: a task with its full comment thread.
type TaskView struct {
	Task
	Comments []Comment
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	AssigneeID  *uint64
}

type UpdateTaskInput struct {
	Title       string
	Description *string
	Status      *TaskStatus
	Priority    TaskPriority
	AssigneeID  *uint64
}

// TaskFilter narrows a task listing. Nil fields do not filter.
type TaskFilter struct {
	AuthorID   *uint64
	AssigneeID *uint64
	Status     *TaskStatus
	Priority   *TaskPriority
}
