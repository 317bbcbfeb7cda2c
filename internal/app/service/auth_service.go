package service

import (
	"context"
	"errors"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
)

type AuthService struct {
	users  ports.UserService
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewAuthService(users ports.UserService, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login checks the credentials and issues an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Token, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Token{}, domain.ErrInvalidCredentials
		}
		return domain.Token{}, err
	}

	if password == "" || !s.hasher.Verify(password, user.PasswordHash) {
		return domain.Token{}, domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}

func (s *AuthService) Authenticate(_ context.Context, token string) (domain.Claims, error) {
	return s.tokens.Parse(token)
}

var _ ports.AuthService = (*AuthService)(nil)
