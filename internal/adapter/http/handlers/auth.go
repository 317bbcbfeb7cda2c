package handlers

import (
	"net/http"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/mapper"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
	"github.com/Artem310/TaskManagerProject/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService ports.UserService
	authService ports.AuthService
}

func NewAuthHandler(userService ports.UserService, authService ports.AuthService) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidAuthPayload)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, apierrors.MsgFailRegister, "failed to register user")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidAuthPayload)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTokenResponse(token))
}
