package ports

import (
	"context"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenIssuer interface {
	Issue(user domain.User) (domain.Token, error)
	Parse(token string) (domain.Claims, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Token, error)
	Authenticate(ctx context.Context, token string) (domain.Claims, error)
}

// Transactor runs fn inside a single store transaction. Repositories called
// with the ctx passed to fn take part in that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
