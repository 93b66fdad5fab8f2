package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/repositories"
)

type UserRepository interface {
	GetUserById(ctx context.Context, exec repositories.Executor, id uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor,
		input models.CreateUserInput) (models.User, error)
}

type userExecutorFactory interface {
	GetExecutor() repositories.Executor
}

// UserUsecase manages the actors referenced by audit rows.
type UserUsecase struct {
	executorFactory userExecutorFactory
	userRepository  UserRepository
}

func NewUserUsecase(
	executorFactory userExecutorFactory,
	userRepository UserRepository,
) UserUsecase {
	return UserUsecase{
		executorFactory: executorFactory,
		userRepository:  userRepository,
	}
}

func (uc UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return uc.userRepository.GetUserById(ctx, uc.executorFactory.GetExecutor(), id)
}

func (uc UserUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.userRepository.ListUsers(ctx, uc.executorFactory.GetExecutor())
}

func (uc UserUsecase) CreateUser(ctx context.Context, input models.CreateUserInput) (models.User, error) {
	if input.Name == "" || input.Email == "" {
		return models.User{}, errors.Wrap(models.BadParameterError, "name and email are required")
	}

	return uc.userRepository.CreateUser(ctx, uc.executorFactory.GetExecutor(), input)
}
