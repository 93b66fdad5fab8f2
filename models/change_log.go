package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChangeLogAction string

const (
	ChangeLogActionCreate ChangeLogAction = "CREATE"
	ChangeLogActionUpdate ChangeLogAction = "UPDATE"
	ChangeLogActionDelete ChangeLogAction = "DELETE"
)

func ChangeLogActionFrom(s string) (ChangeLogAction, error) {
	switch a := ChangeLogAction(s); a {
	case ChangeLogActionCreate, ChangeLogActionUpdate, ChangeLogActionDelete:
		return a, nil
	}
	return "", ErrUnknownChangeLogAction
}

// ChangeTrigger is the actor class responsible for a change.
type ChangeTrigger string

const (
	ChangeTriggerUser           ChangeTrigger = "USER"
	ChangeTriggerSystem         ChangeTrigger = "SYSTEM"
	ChangeTriggerBatchOperation ChangeTrigger = "BATCH_OPERATION"
	ChangeTriggerAutomation     ChangeTrigger = "AUTOMATION"
)

// ChangeLog is one audit record: either a single field difference between two
// snapshots of an entity (UPDATE), or a whole-entity CREATE/DELETE record.
// Rows are append-only, never mutated or deleted by this service.
type ChangeLog struct {
	Id         uuid.UUID
	EntityType string
	EntityId   string
	Action     ChangeLogAction

	// Field is nil only for whole-entity CREATE/DELETE records.
	Field    *string
	OldValue json.RawMessage
	NewValue json.RawMessage

	Description *string
	UserId      *string
	TriggeredBy ChangeTrigger
	Metadata    map[string]any

	CreatedAt time.Time

	// UserName is only populated on reads that join the users table.
	UserName *string
}

// CreateChangeLogInput carries the values of a row to append.
type CreateChangeLogInput struct {
	EntityType  string
	EntityId    string
	Action      ChangeLogAction
	Field       *string
	OldValue    json.RawMessage
	NewValue    json.RawMessage
	Description *string
	UserId      *string
	TriggeredBy ChangeTrigger
	Metadata    map[string]any
}

// FieldChange is one detected difference between two snapshots for a single
// field. It is transient: produced during a diff pass and converted into a
// ChangeLog row, never persisted directly.
type FieldChange struct {
	Field    string
	OldValue any
	NewValue any
}

// TrackChangesInput describes one diff-and-record request: two snapshots of
// an entity, the actor, and optional tuning of the field comparison.
type TrackChangesInput struct {
	EntityType string
	EntityId   string
	Before     map[string]any
	After      map[string]any

	UserId      *string
	TriggeredBy ChangeTrigger
	Description *string
	Metadata    map[string]any

	Diff DiffOptions
}

type ChangeLogQuery struct {
	EntityType string
	EntityId   string
	Limit      int
	Offset     int
	// IncludeUser joins the actor's name into the result rows.
	IncludeUser bool
}

const (
	ChangeLogDefaultLimit = 50
	ChangeLogMaxLimit     = 100
)
