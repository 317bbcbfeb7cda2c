package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidTaskQuery   = errors.New("invalid task query")
)

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || !validID(req.AssigneeID) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	priority, err := parsePriority(req.Priority)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  req.AssigneeID,
	}, nil
}

// BuildUpdateTaskInput requires title and priority. Description is replaced
// as sent; a missing status or assigneeId leaves the stored value alone.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if req.Title == nil || req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(*req.Title)
	if title == "" {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	priority, err := parsePriority(req.Priority)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	if hasJSONField(raw, "description") && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "assigneeId") && !isJSONNull(raw["assigneeId"]) && req.AssigneeID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if !validID(req.AssigneeID) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    *priority,
		AssigneeID:  req.AssigneeID,
	}, nil
}

func BuildTaskFilter(query dto.ListTasksQuery) (domain.TaskFilter, error) {
	if !validID(query.AuthorID) || !validID(query.AssigneeID) {
		return domain.TaskFilter{}, ErrInvalidTaskQuery
	}
	status, err := parseStatus(query.Status)
	if err != nil {
		return domain.TaskFilter{}, ErrInvalidTaskQuery
	}
	priority, err := parsePriority(query.Priority)
	if err != nil {
		return domain.TaskFilter{}, ErrInvalidTaskQuery
	}
	return domain.TaskFilter{
		AuthorID:   query.AuthorID,
		AssigneeID: query.AssigneeID,
		Status:     status,
		Priority:   priority,
	}, nil
}

func parseStatus(value *string) (*domain.TaskStatus, error) {
	if value == nil {
		return nil, nil
	}
	status := domain.TaskStatus(strings.ToUpper(strings.TrimSpace(*value)))
	if !status.Valid() {
		return nil, ErrInvalidTaskPayload
	}
	return &status, nil
}

func parsePriority(value *string) (*domain.TaskPriority, error) {
	if value == nil {
		return nil, nil
	}
	priority := domain.TaskPriority(strings.ToUpper(strings.TrimSpace(*value)))
	if !priority.Valid() {
		return nil, ErrInvalidTaskPayload
	}
	return &priority, nil
}

func validID(id *uint64) bool {
	return id == nil || *id > 0
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
