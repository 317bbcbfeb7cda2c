package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/middleware"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type errorMapping struct {
	err    error
	status int
	msgKey string
}

var domainErrors = []errorMapping{
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound, apierrors.MsgUserNotFound},
	{domain.ErrInvalidTitle, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
	{domain.ErrEmptyComment, http.StatusBadRequest, apierrors.MsgInvalidCommentBody},
	{domain.ErrEmptyPassword, http.StatusBadRequest, apierrors.MsgEmptyPassword},
	{domain.ErrPasswordTooLong, http.StatusBadRequest, apierrors.MsgPasswordTooLong},
	{domain.ErrCommentTooLong, http.StatusBadRequest, apierrors.MsgInvalidCommentBody},
	{domain.ErrDescriptionTooLong, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
	{domain.ErrEmailTaken, http.StatusBadRequest, apierrors.MsgEmailTaken},
	{domain.ErrTaskUpdateForbidden, http.StatusForbidden, apierrors.MsgTaskUpdateForbidden},
	{domain.ErrTaskDeleteForbidden, http.StatusForbidden, apierrors.MsgTaskDeleteForbidden},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, apierrors.MsgInvalidCredentials},
	{domain.ErrInvalidToken, http.StatusUnauthorized, apierrors.MsgUnauthorized},
	{domain.ErrTaskVersionConflict, http.StatusConflict, apierrors.MsgTaskVersionConflict},
}

// respondError writes the HTTP error for err. Errors outside the domain set
// are logged and answered with 500 and fallbackKey.
func respondError(c *gin.Context, err error, fallbackKey string, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			c.JSON(m.status, apierrors.CreateError(m.status, m.msgKey, lang))
			return
		}
	}

	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	zap.L().Error(logMsg, fields...)
	_ = c.Error(err)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, fallbackKey, lang),
	)
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

// bindJSONWithRaw binds the body into req and also returns its top-level
// fields so callers can tell an explicit null from an absent field.
func bindJSONWithRaw(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}
	return raw, nil
}
