package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) GetUserById(ctx context.Context, exec repositories.Executor,
	id uuid.UUID,
) (models.User, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.User), args.Error(1)
}

func (r *UserRepository) CreateUser(ctx context.Context, exec repositories.Executor,
	input models.CreateUserInput,
) (models.User, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(models.User), args.Error(1)
}
