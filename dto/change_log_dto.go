package dto

import (
	"encoding/json"
	"time"

	"github.com/ankaa-erp/backend/models"
	"github.com/google/uuid"
	"github.com/guregu/null/v5"
)

type ChangeLogFilters struct {
	EntityType  string `form:"entity_type" binding:"required"`
	EntityId    string `form:"entity_id" binding:"required"`
	Limit       int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset      int    `form:"offset" binding:"omitempty,gte=0"`
	IncludeUser bool   `form:"include_user,default=true"`
}

type ChangeLog struct {
	Id         uuid.UUID `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityId   string    `json:"entity_id"`
	Action     string    `json:"action"`

	Field    null.String     `json:"field"`
	OldValue json.RawMessage `json:"old_value"`
	NewValue json.RawMessage `json:"new_value"`

	Description null.String    `json:"description"`
	UserId      null.String    `json:"user_id"`
	UserName    null.String    `json:"user_name"`
	TriggeredBy string         `json:"triggered_by"`
	Metadata    map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func AdaptChangeLog(m models.ChangeLog) ChangeLog {
	return ChangeLog{
		Id:          m.Id,
		EntityType:  m.EntityType,
		EntityId:    m.EntityId,
		Action:      string(m.Action),
		Field:       null.StringFromPtr(m.Field),
		OldValue:    m.OldValue,
		NewValue:    m.NewValue,
		Description: null.StringFromPtr(m.Description),
		UserId:      null.StringFromPtr(m.UserId),
		UserName:    null.StringFromPtr(m.UserName),
		TriggeredBy: string(m.TriggeredBy),
		Metadata:    m.Metadata,
		CreatedAt:   m.CreatedAt,
	}
}
