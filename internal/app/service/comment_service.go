package service

import (
	"context"
	"strings"
	"time"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
)

type CommentService struct {
	commentRepository ports.CommentRepository
	taskRepository    ports.TaskRepository
	users             ports.UserService
	tx                ports.Transactor
	now               func() time.Time
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	taskRepository ports.TaskRepository,
	users ports.UserService,
	tx ports.Transactor,
) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		taskRepository:    taskRepository,
		users:             users,
		tx:                tx,
		now:               time.Now,
	}
}

// AddComment appends a comment to a task. The creation time is always taken
// from the server clock.
func (s *CommentService) AddComment(ctx context.Context, taskID uint64, text, authorEmail string) (domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	if len(text) > domain.MaxTextBytes {
		return domain.Comment{}, domain.ErrCommentTooLong
	}

	var created domain.Comment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.FindByID(ctx, taskID)
		if err != nil {
			return err
		}

		author, err := s.users.FindByEmail(ctx, authorEmail)
		if err != nil {
			return err
		}

		created, err = s.commentRepository.Create(ctx, domain.Comment{
			TaskID:    task.ID,
			UserID:    author.ID,
			Text:      text,
			CreatedAt: s.now().UTC().Truncate(time.Microsecond),
		})
		return err
	})
	if err != nil {
		return domain.Comment{}, err
	}

	return created, nil
}

// ListComments returns one page of a task's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, taskID uint64, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	var result domain.Page[domain.Comment]
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.taskRepository.FindByID(ctx, taskID); err != nil {
			return err
		}

		var err error
		result, err = s.commentRepository.ListByTask(ctx, taskID, page)
		return err
	})
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	return result, nil
}

func (s *CommentService) ListAllByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	return s.commentRepository.ListAllByTask(ctx, taskID)
}

var _ ports.CommentService = (*CommentService)(nil)
