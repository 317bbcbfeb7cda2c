package handlers

import (
	"net/http"
	"strconv"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/mapper"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/middleware"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
	"github.com/Artem310/TaskManagerProject/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidCommentBody)
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), taskID, req.Text, middleware.GetCallerEmail(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailAddComment, "failed to add comment", zap.Uint64("task_id", taskID))
		return
	}

	c.Header("Location", taskLocation(taskID)+"/comments/"+strconv.FormatUint(comment.ID, 10))
	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	page, ok := parsePageRequest(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), taskID, page)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListComments, "failed to list comments", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentPage(comments))
}
