package mapper

import (
	"time"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToTokenResponse(token domain.Token) dto.TokenResponse {
	return dto.TokenResponse{
		Token:     token.AccessToken,
		TokenType: token.TokenType,
		ExpiresIn: token.ExpiresIn,
	}
}
