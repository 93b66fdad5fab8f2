package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/repositories/dbmodels"
)

func (repo AnkaaDbRepository) GetUserById(ctx context.Context, exec Executor, id uuid.UUID) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumns...).
		From(dbmodels.TABLE_USERS).
		Where("id = ?", id)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo AnkaaDbRepository) ListUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumns...).
		From(dbmodels.TABLE_USERS).
		OrderBy("name")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo AnkaaDbRepository) CreateUser(
	ctx context.Context,
	exec Executor,
	input models.CreateUserInput,
) (models.User, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_USERS).
		Columns("name", "email").
		Values(input.Name, input.Email).
		Suffix("RETURNING *")

	user, err := SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
	if IsUniqueViolationError(err) {
		return models.User{}, errors.Wrapf(models.ConflictError,
			"a user with email %s already exists", input.Email)
	}
	return user, err
}
