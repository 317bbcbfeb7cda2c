package tests

import (
	"context"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput, authorEmail string) (domain.Task, error) {
	args := m.Called(ctx, input, authorEmail)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID uint64) (domain.TaskView, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.TaskView), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput, callerEmail string) (domain.Task, error) {
	args := m.Called(ctx, taskID, input, callerEmail)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID uint64, callerEmail string) error {
	args := m.Called(ctx, taskID, callerEmail)
	return args.Error(0)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, callerEmail string, filter domain.TaskFilter, page domain.PageRequest) (domain.Page[domain.TaskView], error) {
	args := m.Called(ctx, callerEmail, filter, page)
	return args.Get(0).(domain.Page[domain.TaskView]), args.Error(1)
}

type commentServiceMock struct {
	mock.Mock
}

func (m *commentServiceMock) AddComment(ctx context.Context, taskID uint64, text, authorEmail string) (domain.Comment, error) {
	args := m.Called(ctx, taskID, text, authorEmail)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) ListComments(ctx context.Context, taskID uint64, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, taskID, page)
	return args.Get(0).(domain.Page[domain.Comment]), args.Error(1)
}

func (m *commentServiceMock) ListAllByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.Token, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Token), args.Error(1)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.Claims, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Claims), args.Error(1)
}
