package ports

import (
	"context"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	ListByTask(ctx context.Context, taskID uint64, page domain.PageRequest) (domain.Page[domain.Comment], error)
	ListAllByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
}

type CommentService interface {
	AddComment(ctx context.Context, taskID uint64, text, authorEmail string) (domain.Comment, error)
	ListComments(ctx context.Context, taskID uint64, page domain.PageRequest) (domain.Page[domain.Comment], error)
	ListAllByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
}
