package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/utils"
	"github.com/google/uuid"
)

type DbChangeLog struct {
	Id         uuid.UUID `db:"id"`
	EntityType string    `db:"entity_type"`
	EntityId   string    `db:"entity_id"`
	Action     string    `db:"action"`

	Field    *string         `db:"field"`
	OldValue json.RawMessage `db:"old_value"`
	NewValue json.RawMessage `db:"new_value"`

	Description *string         `db:"description"`
	UserId      *string         `db:"user_id"`
	TriggeredBy string          `db:"triggered_by"`
	Metadata    json.RawMessage `db:"metadata"`

	CreatedAt time.Time `db:"created_at"`
}

type DbChangeLogWithUser struct {
	DbChangeLog

	UserName *string `db:"user_name"`
}

const TABLE_CHANGE_LOGS = "change_logs"

var SelectChangeLogColumns = utils.ColumnList[DbChangeLog]()

func AdaptChangeLog(db DbChangeLog) (models.ChangeLog, error) {
	action, err := models.ChangeLogActionFrom(db.Action)
	if err != nil {
		return models.ChangeLog{}, err
	}

	var metadata map[string]any
	if len(db.Metadata) > 0 {
		if err := json.Unmarshal(db.Metadata, &metadata); err != nil {
			return models.ChangeLog{}, err
		}
	}

	return models.ChangeLog{
		Id:          db.Id,
		EntityType:  db.EntityType,
		EntityId:    db.EntityId,
		Action:      action,
		Field:       db.Field,
		OldValue:    db.OldValue,
		NewValue:    db.NewValue,
		Description: db.Description,
		UserId:      db.UserId,
		TriggeredBy: models.ChangeTrigger(db.TriggeredBy),
		Metadata:    metadata,
		CreatedAt:   db.CreatedAt,
	}, nil
}

func AdaptChangeLogWithUser(db DbChangeLogWithUser) (models.ChangeLog, error) {
	changeLog, err := AdaptChangeLog(db.DbChangeLog)
	if err != nil {
		return models.ChangeLog{}, err
	}
	changeLog.UserName = db.UserName
	return changeLog, nil
}
