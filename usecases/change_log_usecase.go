package usecases

import (
	"context"
	"encoding/json"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/pure_utils"
	"github.com/ankaa-erp/backend/repositories"
	"github.com/cockroachdb/errors"
)

type ChangeLogRepository interface {
	CreateChangeLog(ctx context.Context, exec repositories.Executor,
		input models.CreateChangeLogInput) (models.ChangeLog, error)
	BatchCreateChangeLogs(ctx context.Context, exec repositories.Executor,
		inputs []models.CreateChangeLogInput) error
	ListChangeLogs(ctx context.Context, exec repositories.Executor,
		query models.ChangeLogQuery) ([]models.ChangeLog, error)
}

type changeLogExecutorFactory interface {
	GetExecutor() repositories.Executor
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

// ChangeLogUsecase records differences between entity snapshots as immutable
// audit rows. It only ever appends: a write failure is a correctness problem
// and always propagates to the caller.
type ChangeLogUsecase struct {
	executorFactory     changeLogExecutorFactory
	changeLogRepository ChangeLogRepository
}

func NewChangeLogUsecase(
	executorFactory changeLogExecutorFactory,
	changeLogRepository ChangeLogRepository,
) ChangeLogUsecase {
	return ChangeLogUsecase{
		executorFactory:     executorFactory,
		changeLogRepository: changeLogRepository,
	}
}

// TrackChanges diffs the two snapshots, persists one UPDATE row per changed
// field in a single batched insert, and returns the newly created rows. When
// nothing changed (or either snapshot is missing) no write is performed.
//
// The insert and the read-back of the created rows run in one transaction, so
// a concurrent writer on the same entity cannot leak its rows into the result.
func (uc ChangeLogUsecase) TrackChanges(
	ctx context.Context,
	input models.TrackChangesInput,
) ([]models.ChangeLog, error) {
	changes := models.DiffSnapshots(input.Before, input.After, input.Diff)
	if len(changes) == 0 {
		return []models.ChangeLog{}, nil
	}

	createInputs, err := pure_utils.MapErr(changes,
		func(change models.FieldChange) (models.CreateChangeLogInput, error) {
			field := change.Field
			oldValue, err := serializeChangeValue(change.OldValue)
			if err != nil {
				return models.CreateChangeLogInput{}, err
			}
			newValue, err := serializeChangeValue(change.NewValue)
			if err != nil {
				return models.CreateChangeLogInput{}, err
			}
			return models.CreateChangeLogInput{
				EntityType:  input.EntityType,
				EntityId:    input.EntityId,
				Action:      models.ChangeLogActionUpdate,
				Field:       &field,
				OldValue:    oldValue,
				NewValue:    newValue,
				Description: input.Description,
				UserId:      input.UserId,
				TriggeredBy: triggerOrDefault(input.TriggeredBy),
				Metadata:    input.Metadata,
			}, nil
		})
	if err != nil {
		return nil, err
	}

	var created []models.ChangeLog
	err = uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := uc.changeLogRepository.BatchCreateChangeLogs(ctx, tx, createInputs); err != nil {
			return err
		}

		var err error
		created, err = uc.changeLogRepository.ListChangeLogs(ctx, tx, models.ChangeLogQuery{
			EntityType: input.EntityType,
			EntityId:   input.EntityId,
			Limit:      len(createInputs),
		})
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not record entity changes")
	}
	return created, nil
}

// TrackCreation records a single CREATE row holding the full created state.
func (uc ChangeLogUsecase) TrackCreation(
	ctx context.Context,
	entityType, entityId string,
	data map[string]any,
	userId *string,
) (models.ChangeLog, error) {
	newValue, err := serializeChangeValue(data)
	if err != nil {
		return models.ChangeLog{}, err
	}

	return uc.changeLogRepository.CreateChangeLog(ctx, uc.executorFactory.GetExecutor(),
		models.CreateChangeLogInput{
			EntityType:  entityType,
			EntityId:    entityId,
			Action:      models.ChangeLogActionCreate,
			NewValue:    newValue,
			UserId:      userId,
			TriggeredBy: models.ChangeTriggerUser,
		})
}

// TrackDeletion records a single DELETE row holding the last known state.
func (uc ChangeLogUsecase) TrackDeletion(
	ctx context.Context,
	entityType, entityId string,
	data map[string]any,
	userId *string,
) (models.ChangeLog, error) {
	oldValue, err := serializeChangeValue(data)
	if err != nil {
		return models.ChangeLog{}, err
	}

	return uc.changeLogRepository.CreateChangeLog(ctx, uc.executorFactory.GetExecutor(),
		models.CreateChangeLogInput{
			EntityType:  entityType,
			EntityId:    entityId,
			Action:      models.ChangeLogActionDelete,
			OldValue:    oldValue,
			UserId:      userId,
			TriggeredBy: models.ChangeTriggerUser,
		})
}

// ListChangeLogs is a plain paginated read of an entity's audit trail, most
// recent first. The caller decides whether the actor's name is joined in.
func (uc ChangeLogUsecase) ListChangeLogs(
	ctx context.Context,
	query models.ChangeLogQuery,
) ([]models.ChangeLog, error) {
	if query.EntityType == "" || query.EntityId == "" {
		return nil, errors.Wrap(models.BadParameterError, "entity type and id are required")
	}

	return uc.changeLogRepository.ListChangeLogs(ctx, uc.executorFactory.GetExecutor(), query)
}

func serializeChangeValue(value any) (json.RawMessage, error) {
	if value == nil {
		return nil, nil
	}
	serialized, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize change value")
	}
	return serialized, nil
}

func triggerOrDefault(trigger models.ChangeTrigger) models.ChangeTrigger {
	if trigger == "" {
		return models.ChangeTriggerUser
	}
	return trigger
}
