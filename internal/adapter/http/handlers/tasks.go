package handlers

import (
	"net/http"
	"strconv"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/mapper"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/middleware"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/validation"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
	"github.com/Artem310/TaskManagerProject/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input, middleware.GetCallerEmail(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.Header("Location", taskLocation(task.ID))
	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	view, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgInternal, "failed to get task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(view))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input, middleware.GetCallerEmail(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, middleware.GetCallerEmail(c)); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskQuery)
		return
	}
	filter, err := validation.BuildTaskFilter(query)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskQuery)
		return
	}

	page, ok := parsePageRequest(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), middleware.GetCallerEmail(c), filter, page)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponsePage(tasks))
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		respondBadRequest(c, apierrors.MsgInvalidTaskID)
		return 0, false
	}
	return taskID, true
}

func parsePageRequest(c *gin.Context) (domain.PageRequest, bool) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPagination)
		return domain.PageRequest{}, false
	}
	page, err := validation.BuildPageRequest(query)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPagination)
		return domain.PageRequest{}, false
	}
	return page, true
}

func taskLocation(taskID uint64) string {
	return "/api/tasks/" + strconv.FormatUint(taskID, 10)
}
