package ports

import (
	"context"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, email, password string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
}
