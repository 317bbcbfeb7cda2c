package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
)

const commentColumns = "id, task_id, user_id, text, created_at"

// Newest first; id breaks ties between comments stored in the same instant.
const commentOrder = " ORDER BY created_at DESC, id DESC"

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	UserID    uint64    `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	result, err := executor(ctx, r.db).ExecContext(
		ctx,
		"INSERT INTO comments (task_id, user_id, text, created_at) VALUES (?, ?, ?, ?)",
		comment.TaskID,
		comment.UserID,
		comment.Text,
		comment.CreatedAt,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}
	comment.ID = uint64(id)

	return comment, nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	exec := executor(ctx, r.db)

	var total int64
	if err := sqlx.GetContext(ctx, exec, &total, "SELECT COUNT(*) FROM comments WHERE task_id = ?", taskID); err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	var rows []commentRow
	query := "SELECT " + commentColumns + " FROM comments WHERE task_id = ?" + commentOrder + " LIMIT ? OFFSET ?"
	if err := sqlx.SelectContext(ctx, exec, &rows, query, taskID, page.Size, page.Offset()); err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	return domain.NewPage(mapCommentRows(rows), page, total), nil
}

func (r *CommentRepository) ListAllByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	query := "SELECT " + commentColumns + " FROM comments WHERE task_id = ?" + commentOrder
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, taskID); err != nil {
		return nil, err
	}

	return mapCommentRows(rows), nil
}

func mapCommentRows(rows []commentRow) []domain.Comment {
	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.Comment{
			ID:        row.ID,
			TaskID:    row.TaskID,
			UserID:    row.UserID,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		})
	}
	return comments
}
