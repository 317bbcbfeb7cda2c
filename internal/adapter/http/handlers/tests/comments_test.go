package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/handlers"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentRouter(t *testing.T, service *commentServiceMock) *gin.Engine {
	t.Helper()
	router, protected := newAuthenticatedRouter(t)
	handler := handlers.NewCommentHandler(service)
	protected.POST("/tasks/:id/comments", handler.AddComment)
	protected.GET("/tasks/:id/comments", handler.ListComments)
	return router
}

func TestCommentHandler_AddComment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		serviceMock := new(commentServiceMock)
		serviceMock.On("AddComment", mock.Anything, uint64(10), "looks good", callerEmail).
			Return(domain.Comment{ID: 3, TaskID: 10, UserID: 1, Text: "looks good", CreatedAt: createdAt}, nil).Once()

		rec := doRequest(newCommentRouter(t, serviceMock), http.MethodPost, "/api/tasks/10/comments", `{"text":"looks good"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/tasks/10/comments/3", rec.Header().Get("Location"))
		var got dto.CommentItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, uint64(3), got.ID)
		assert.Equal(t, uint64(1), got.UserID)
		assert.Equal(t, "looks good", got.Text)
		serviceMock.AssertExpectations(t)
	})

	t.Run("missing text", func(t *testing.T) {
		serviceMock := new(commentServiceMock)

		rec := doRequest(newCommentRouter(t, serviceMock), http.MethodPost, "/api/tasks/10/comments", `{}`)

		requireAPIError(t, rec, http.StatusBadRequest, apierrors.MsgInvalidCommentBody)
		serviceMock.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank text", func(t *testing.T) {
		serviceMock := new(commentServiceMock)
		serviceMock.On("AddComment", mock.Anything, uint64(10), "   ", callerEmail).
			Return(domain.Comment{}, domain.ErrEmptyComment).Once()

		rec := doRequest(newCommentRouter(t, serviceMock), http.MethodPost, "/api/tasks/10/comments", `{"text":"   "}`)

		requireAPIError(t, rec, http.StatusBadRequest, apierrors.MsgInvalidCommentBody)
	})

	t.Run("task missing", func(t *testing.T) {
		serviceMock := new(commentServiceMock)
		serviceMock.On("AddComment", mock.Anything, uint64(404), "hi", callerEmail).
			Return(domain.Comment{}, domain.ErrTaskNotFound).Once()

		rec := doRequest(newCommentRouter(t, serviceMock), http.MethodPost, "/api/tasks/404/comments", `{"text":"hi"}`)

		requireAPIError(t, rec, http.StatusNotFound, apierrors.MsgTaskNotFound)
	})

	t.Run("internal error", func(t *testing.T) {
		serviceMock := new(commentServiceMock)
		serviceMock.On("AddComment", mock.Anything, uint64(10), "hi", callerEmail).
			Return(domain.Comment{}, errors.New("db is down")).Once()

		rec := doRequest(newCommentRouter(t, serviceMock), http.MethodPost, "/api/tasks/10/comments", `{"text":"hi"}`)

		requireAPIError(t, rec, http.StatusInternalServerError, apierrors.MsgFailAddComment)
	})
}

func TestCommentHandler_ListComments(t *testing.T) {
	t.Run("newest first page", func(t *testing.T) {
		serviceMock := new(commentServiceMock)
		page := domain.PageRequest{Page: 0, Size: 2}
		serviceMock.On("ListComments", mock.Anything, uint64(10), page).Return(domain.NewPage([]domain.Comment{
			{ID: 3, TaskID: 10, Text: "third", CreatedAt: updatedAt},
			{ID: 2, TaskID: 10, Text: "second", CreatedAt: createdAt},
		}, page, 3), nil).Once()

		rec := doRequest(newCommentRouter(t, serviceMock), http.MethodGet, "/api/tasks/10/comments?size=2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got dto.Page[dto.CommentItem]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Items, 2)
		assert.Equal(t, "third", got.Items[0].Text)
		assert.Equal(t, int64(3), got.TotalItems)
		assert.Equal(t, 2, got.TotalPages)
	})

	t.Run("task missing", func(t *testing.T) {
		serviceMock := new(commentServiceMock)
		serviceMock.On("ListComments", mock.Anything, uint64(404), mock.Anything).
			Return(domain.Page[domain.Comment]{}, domain.ErrTaskNotFound).Once()

		rec := doRequest(newCommentRouter(t, serviceMock), http.MethodGet, "/api/tasks/404/comments", "")

		requireAPIError(t, rec, http.StatusNotFound, apierrors.MsgTaskNotFound)
	})

	t.Run("invalid paging", func(t *testing.T) {
		rec := doRequest(newCommentRouter(t, new(commentServiceMock)), http.MethodGet, "/api/tasks/10/comments?size=500", "")

		requireAPIError(t, rec, http.StatusBadRequest, apierrors.MsgInvalidPagination)
	})
}
