package repositories

import (
	"context"
	"encoding/json"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/repositories/dbmodels"
	"github.com/cockroachdb/errors"
)

func (repo AnkaaDbRepository) CreateChangeLog(
	ctx context.Context,
	exec Executor,
	input models.CreateChangeLogInput,
) (models.ChangeLog, error) {
	metadata, err := marshalChangeLogMetadata(input.Metadata)
	if err != nil {
		return models.ChangeLog{}, err
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CHANGE_LOGS).
		Columns(
			"entity_type",
			"entity_id",
			"action",
			"field",
			"old_value",
			"new_value",
			"description",
			"user_id",
			"triggered_by",
			"metadata",
		).
		Values(
			input.EntityType,
			input.EntityId,
			input.Action,
			input.Field,
			input.OldValue,
			input.NewValue,
			input.Description,
			input.UserId,
			input.TriggeredBy,
			metadata,
		).
		Suffix("RETURNING *")

	return SqlToModel(ctx, exec, query, dbmodels.AdaptChangeLog)
}

func (repo AnkaaDbRepository) BatchCreateChangeLogs(
	ctx context.Context,
	exec Executor,
	inputs []models.CreateChangeLogInput,
) error {
	if len(inputs) == 0 {
		return nil
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CHANGE_LOGS).
		Columns(
			"entity_type",
			"entity_id",
			"action",
			"field",
			"old_value",
			"new_value",
			"description",
			"user_id",
			"triggered_by",
			"metadata",
		)

	for _, input := range inputs {
		metadata, err := marshalChangeLogMetadata(input.Metadata)
		if err != nil {
			return err
		}
		query = query.Values(
			input.EntityType,
			input.EntityId,
			input.Action,
			input.Field,
			input.OldValue,
			input.NewValue,
			input.Description,
			input.UserId,
			input.TriggeredBy,
			metadata,
		)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo AnkaaDbRepository) ListChangeLogs(
	ctx context.Context,
	exec Executor,
	query models.ChangeLogQuery,
) ([]models.ChangeLog, error) {
	if query.Limit <= 0 {
		query.Limit = models.ChangeLogDefaultLimit
	}
	if query.Limit > models.ChangeLogMaxLimit {
		query.Limit = models.ChangeLogMaxLimit
	}

	if !query.IncludeUser {
		sql := NewQueryBuilder().
			Select(dbmodels.SelectChangeLogColumns...).
			From(dbmodels.TABLE_CHANGE_LOGS).
			Where("entity_type = ?", query.EntityType).
			Where("entity_id = ?", query.EntityId).
			OrderBy("created_at DESC, id DESC").
			Limit(uint64(query.Limit)).
			Offset(uint64(query.Offset))

		return SqlToListOfModels(ctx, exec, sql, dbmodels.AdaptChangeLog)
	}

	sql := NewQueryBuilder().
		Select(append(
			columnsNames("cl", dbmodels.SelectChangeLogColumns),
			"u.name as user_name",
		)...).
		From(dbmodels.TABLE_CHANGE_LOGS + " cl").
		// user_id is free text (system actors are not users rows), so the
		// cast must go from uuid to text, never the other way.
		LeftJoin(dbmodels.TABLE_USERS + " u on u.id::text = cl.user_id").
		Where("cl.entity_type = ?", query.EntityType).
		Where("cl.entity_id = ?", query.EntityId).
		OrderBy("cl.created_at DESC, cl.id DESC").
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset))

	return SqlToListOfModels(ctx, exec, sql, dbmodels.AdaptChangeLogWithUser)
}

func marshalChangeLogMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	out, err := json.Marshal(metadata)
	return out, errors.Wrap(err, "could not serialize change log metadata")
}
