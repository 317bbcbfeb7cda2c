package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	tx             ports.Transactor
	now            func() time.Time
}

func NewUserService(userRepository ports.UserRepository, hasher ports.PasswordHasher, tx ports.Transactor) *UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		tx:             tx,
		now:            time.Now,
	}
}

// Register stores a new user with a bcrypt hash of password.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	zap.L().Info("registering user", zap.String("email", email))

	if password == "" {
		zap.L().Warn("registration rejected: empty password", zap.String("email", email))
		return domain.User{}, domain.ErrEmptyPassword
	}
	if len(password) > domain.MaxPasswordBytes {
		zap.L().Warn("registration rejected: password too long", zap.String("email", email))
		return domain.User{}, domain.ErrPasswordTooLong
	}

	var created domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.userRepository.EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return domain.ErrEmailTaken
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		created, err = s.userRepository.Create(ctx, domain.User{
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			zap.L().Warn("registration rejected: email already exists", zap.String("email", email))
		}
		return domain.User{}, err
	}

	zap.L().Info("user registered", zap.Uint64("user_id", created.ID), zap.String("email", created.Email))
	return created, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.userRepository.FindByEmail(ctx, email)
}

func (s *UserService) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.FindByID(ctx, id)
}

var _ ports.UserService = (*UserService)(nil)
