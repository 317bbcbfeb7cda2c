package service

import (
	"context"
	"strings"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
)

// TaskService enforces task ownership and assembles task listings. It holds
// no state of its own.
type TaskService struct {
	taskRepository ports.TaskRepository
	users          ports.UserService
	comments       ports.CommentService
	tx             ports.Transactor
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	users ports.UserService,
	comments ports.CommentService,
	tx ports.Transactor,
) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		users:          users,
		comments:       comments,
		tx:             tx,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput, authorEmail string) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrInvalidTitle
	}
	if err := checkDescription(input.Description); err != nil {
		return domain.Task{}, err
	}

	var created domain.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		author, err := s.users.FindByEmail(ctx, authorEmail)
		if err != nil {
			return err
		}

		task := domain.Task{
			Title:       title,
			Description: input.Description,
			Status:      domain.TaskStatusPending,
			Priority:    domain.TaskPriorityMedium,
			AuthorID:    author.ID,
		}
		if input.Status != nil {
			task.Status = *input.Status
		}
		if input.Priority != nil {
			task.Priority = *input.Priority
		}

		if input.AssigneeID != nil {
			assignee, err := s.users.FindByID(ctx, *input.AssigneeID)
			if err != nil {
				return err
			}
			task.AssigneeID = &assignee.ID
		}

		created, err = s.taskRepository.Create(ctx, task)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (domain.TaskView, error) {
	var view domain.TaskView
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.FindByID(ctx, taskID)
		if err != nil {
			return err
		}

		view, err = s.assemble(ctx, task)
		return err
	})
	if err != nil {
		return domain.TaskView{}, err
	}

	return view, nil
}

// UpdateTask applies input on behalf of the caller. Only the author or the
// current assignee may update; only the assignee may change the status.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput, callerEmail string) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrInvalidTitle
	}
	if err := checkDescription(input.Description); err != nil {
		return domain.Task{}, err
	}

	var updated domain.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.FindByID(ctx, taskID)
		if err != nil {
			return err
		}

		caller, err := s.users.FindByEmail(ctx, callerEmail)
		if err != nil {
			return err
		}

		isAssignee := task.IsAssignee(caller.ID)
		if !task.IsAuthor(caller.ID) && !isAssignee {
			return domain.ErrTaskUpdateForbidden
		}

		task.Title = title
		task.Description = input.Description
		task.Priority = input.Priority

		if isAssignee && input.Status != nil {
			task.Status = *input.Status
		}

		if input.AssigneeID != nil {
			assignee, err := s.users.FindByID(ctx, *input.AssigneeID)
			if err != nil {
				return err
			}
			task.AssigneeID = &assignee.ID
		}

		updated, err = s.taskRepository.Save(ctx, task)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	return updated, nil
}

// DeleteTask removes a task and its comments. Only the author may delete.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64, callerEmail string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.FindByID(ctx, taskID)
		if err != nil {
			return err
		}

		caller, err := s.users.FindByEmail(ctx, callerEmail)
		if err != nil {
			return err
		}

		if !task.IsAuthor(caller.ID) {
			return domain.ErrTaskDeleteForbidden
		}

		return s.taskRepository.Delete(ctx, task.ID)
	})
}

// ListTasks returns a page of tasks matching filter, each with its full
// comment thread attached.
func (s *TaskService) ListTasks(ctx context.Context, callerEmail string, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.TaskView], error) {
	var result domain.Page[domain.TaskView]
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByEmail(ctx, callerEmail); err != nil {
			return err
		}

		resolved := domain.TaskFilter{Status: filter.Status, Priority: filter.Priority}
		if filter.AuthorID != nil {
			author, err := s.users.FindByID(ctx, *filter.AuthorID)
			if err != nil {
				return err
			}
			resolved.AuthorID = &author.ID
		}
		if filter.AssigneeID != nil {
			assignee, err := s.users.FindByID(ctx, *filter.AssigneeID)
			if err != nil {
				return err
			}
			resolved.AssigneeID = &assignee.ID
		}

		tasks, err := s.taskRepository.List(ctx, resolved, page)
		if err != nil {
			return err
		}

		views := make([]domain.TaskView, 0, len(tasks.Items))
		for _, task := range tasks.Items {
			view, err := s.assemble(ctx, task)
			if err != nil {
				return err
			}
			views = append(views, view)
		}

		result = domain.Page[domain.TaskView]{
			Items:      views,
			Page:       tasks.Page,
			Size:       tasks.Size,
			TotalItems: tasks.TotalItems,
			TotalPages: tasks.TotalPages,
		}
		return nil
	})
	if err != nil {
		return domain.Page[domain.TaskView]{}, err
	}

	return result, nil
}

func (s *TaskService) assemble(ctx context.Context, task domain.Task) (domain.TaskView, error) {
	comments, err := s.comments.ListAllByTask(ctx, task.ID)
	if err != nil {
		return domain.TaskView{}, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return domain.TaskView{Task: task, Comments: comments}, nil
}

func checkDescription(description *string) error {
	if description != nil && len(*description) > domain.MaxTextBytes {
		return domain.ErrDescriptionTooLong
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
