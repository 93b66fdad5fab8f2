package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/repositories"
)

type ChangeLogRepository struct {
	mock.Mock
}

func (r *ChangeLogRepository) CreateChangeLog(ctx context.Context, exec repositories.Executor,
	input models.CreateChangeLogInput,
) (models.ChangeLog, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(models.ChangeLog), args.Error(1)
}

func (r *ChangeLogRepository) BatchCreateChangeLogs(ctx context.Context, exec repositories.Executor,
	inputs []models.CreateChangeLogInput,
) error {
	args := r.Called(ctx, exec, inputs)
	return args.Error(0)
}

func (r *ChangeLogRepository) ListChangeLogs(ctx context.Context, exec repositories.Executor,
	query models.ChangeLogQuery,
) ([]models.ChangeLog, error) {
	args := r.Called(ctx, exec, query)
	return args.Get(0).([]models.ChangeLog), args.Error(1)
}
