package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Artem310/TaskManagerProject/internal/adapter/auth"
	"github.com/Artem310/TaskManagerProject/internal/app/service"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

func newAuthService(users *userServiceMock) *service.AuthService {
	issuer := auth.NewJWTIssuer(auth.JWTConfig{Secret: "test-secret", Issuer: "test", TokenTTL: time.Hour})
	return service.NewAuthService(users, hasherStub{}, issuer)
}

func TestAuthService_Login_Success(t *testing.T) {
	users := new(userServiceMock)
	users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(domain.User{ID: 4, Email: "a@x.com", PasswordHash: "hashed:pw1"}, nil).Once()
	svc := newAuthService(users)

	token, err := svc.Login(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, "Bearer", token.TokenType)
	require.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := svc.Authenticate(context.Background(), token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, uint64(4), claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(userServiceMock)
	users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(domain.User{ID: 4, Email: "a@x.com", PasswordHash: "hashed:pw1"}, nil).Once()

	_, err := newAuthService(users).Login(context.Background(), "a@x.com", "nope")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := new(userServiceMock)
	users.On("FindByEmail", mock.Anything, "ghost@x.com").Return(domain.User{}, domain.ErrUserNotFound).Once()

	_, err := newAuthService(users).Login(context.Background(), "ghost@x.com", "pw1")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_Garbage(t *testing.T) {
	_, err := newAuthService(new(userServiceMock)).Authenticate(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
