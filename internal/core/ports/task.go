package ports

import (
	"context"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	Save(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput, authorEmail string) (domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.TaskView, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput, callerEmail string) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64, callerEmail string) error
	ListTasks(ctx context.Context, callerEmail string, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.TaskView], error)
}
