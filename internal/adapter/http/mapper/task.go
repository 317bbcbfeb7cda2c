package mapper

import (
	"time"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		AuthorID:  task.AuthorID,
		Version:   task.Version,
		CreatedAt: task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.AssigneeID != nil {
		value := *task.AssigneeID
		item.AssigneeID = &value
	}

	return item
}

func ToTaskResponse(view domain.TaskView) dto.TaskResponse {
	return dto.TaskResponse{
		TaskItem: ToTaskItem(view.Task),
		Comments: ToCommentItems(view.Comments),
	}
}

func ToTaskResponsePage(page domain.Page[domain.TaskView]) dto.Page[dto.TaskResponse] {
	return ToPage(domain.MapPage(page, ToTaskResponse))
}

func ToPage[T any](page domain.Page[T]) dto.Page[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return dto.Page[T]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
