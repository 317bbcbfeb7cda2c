package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
)

const taskColumns = `id, title, description, status, priority, author_id, assignee_id, version, created_at, updated_at`

const insertTaskQuery = `
INSERT INTO tasks (title, description, status, priority, author_id, assignee_id, version, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, status = ?, priority = ?, assignee_id = ?, version = version + 1, updated_at = ?
WHERE id = ? AND version = ?
`

type TaskRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	AuthorID    uint64         `db:"author_id"`
	AssigneeID  sql.NullInt64  `db:"assignee_id"`
	Version     uint64         `db:"version"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	now := r.now().UTC().Truncate(time.Microsecond)
	task.Version = 1
	task.CreatedAt = now
	task.UpdatedAt = now

	result, err := executor(ctx, r.db).ExecContext(
		ctx,
		insertTaskQuery,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		string(task.Priority),
		task.AuthorID,
		nullUint64(task.AssigneeID),
		task.Version,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	task.ID = uint64(id)

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

// Save writes the full state of task if nobody else saved it since it was
// read, and returns it with the bumped version.
func (r *TaskRepository) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	updatedAt := r.now().UTC().Truncate(time.Microsecond)

	result, err := executor(ctx, r.db).ExecContext(
		ctx,
		updateTaskQuery,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		string(task.Priority),
		nullUint64(task.AssigneeID),
		updatedAt,
		task.ID,
		task.Version,
	)
	if err != nil {
		return domain.Task{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		if _, err := r.FindByID(ctx, task.ID); err != nil {
			return domain.Task{}, err
		}
		return domain.Task{}, domain.ErrTaskVersionConflict
	}

	task.Version++
	task.UpdatedAt = updatedAt
	return task, nil
}

// Delete removes the task together with its comments.
func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	exec := executor(ctx, r.db)

	if _, err := exec.ExecContext(ctx, "DELETE FROM comments WHERE task_id = ?", id); err != nil {
		return err
	}

	result, err := exec.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.Task], error) {
	where, args := taskFilterClause(filter)
	exec := executor(ctx, r.db)

	var total int64
	if err := sqlx.GetContext(ctx, exec, &total, "SELECT COUNT(*) FROM tasks"+where, args...); err != nil {
		return domain.Page[domain.Task]{}, err
	}

	var rows []taskRow
	query := "SELECT " + taskColumns + " FROM tasks" + where + " ORDER BY id LIMIT ? OFFSET ?"
	if err := sqlx.SelectContext(ctx, exec, &rows, query, append(args, page.Size, page.Offset())...); err != nil {
		return domain.Page[domain.Task]{}, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return domain.NewPage(tasks, page, total), nil
}

func taskFilterClause(filter domain.TaskFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.AuthorID != nil {
		conditions = append(conditions, "author_id = ?")
		args = append(args, *filter.AuthorID)
	}
	if filter.AssigneeID != nil {
		conditions = append(conditions, "assignee_id = ?")
		args = append(args, *filter.AssigneeID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(*filter.Priority))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		AuthorID:  row.AuthorID,
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.AssigneeID.Valid {
		value := uint64(row.AssigneeID.Int64)
		task.AssigneeID = &value
	}

	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullUint64(value *uint64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}
