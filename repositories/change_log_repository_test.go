package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/pure_utils"
)

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

var changeLogColumns = []string{
	"id", "entity_type", "entity_id", "action", "field", "old_value",
	"new_value", "description", "user_id", "triggered_by", "metadata", "created_at",
}

func changeLogRow(id uuid.UUID, createdAt time.Time) []any {
	return []any{
		id, "Truck", "truck-1", "UPDATE", pure_utils.Ptr("status"),
		json.RawMessage(`"OPEN"`), json.RawMessage(`"DONE"`),
		(*string)(nil), pure_utils.Ptr("user-1"), "USER", json.RawMessage(nil), createdAt,
	}
}

func TestCreateChangeLog(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		id := uuid.New()
		createdAt := time.Now()

		mock.ExpectQuery("INSERT INTO change_logs").
			WithArgs(anyArgs(10)...).
			WillReturnRows(pgxmock.NewRows(changeLogColumns).
				AddRow(changeLogRow(id, createdAt)...))

		changeLog, err := AnkaaDbRepository{}.CreateChangeLog(context.Background(), mock,
			models.CreateChangeLogInput{
				EntityType:  "Truck",
				EntityId:    "truck-1",
				Action:      models.ChangeLogActionUpdate,
				Field:       pure_utils.Ptr("status"),
				OldValue:    json.RawMessage(`"OPEN"`),
				NewValue:    json.RawMessage(`"DONE"`),
				UserId:      pure_utils.Ptr("user-1"),
				TriggeredBy: models.ChangeTriggerUser,
			})

		assert.NoError(t, err)
		assert.Equal(t, id, changeLog.Id)
		assert.Equal(t, models.ChangeLogActionUpdate, changeLog.Action)
		assert.Equal(t, "status", *changeLog.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO change_logs").
			WithArgs(anyArgs(10)...).
			WillReturnError(assert.AnError)

		_, err = AnkaaDbRepository{}.CreateChangeLog(context.Background(), mock,
			models.CreateChangeLogInput{
				EntityType: "Truck",
				EntityId:   "truck-1",
				Action:     models.ChangeLogActionCreate,
			})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBatchCreateChangeLogs(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectExec("INSERT INTO change_logs").
			WithArgs(anyArgs(20)...).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))

		err = AnkaaDbRepository{}.BatchCreateChangeLogs(context.Background(), mock,
			[]models.CreateChangeLogInput{
				{EntityType: "Truck", EntityId: "truck-1", Action: models.ChangeLogActionUpdate},
				{EntityType: "Truck", EntityId: "truck-1", Action: models.ChangeLogActionUpdate},
			})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input performs no query", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		err = AnkaaDbRepository{}.BatchCreateChangeLogs(context.Background(), mock, nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListChangeLogs(t *testing.T) {
	t.Run("without user join", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		id := uuid.New()
		createdAt := time.Now()

		mock.ExpectQuery("SELECT .* FROM change_logs WHERE entity_type = \\$1 AND entity_id = \\$2").
			WithArgs("Truck", "truck-1").
			WillReturnRows(pgxmock.NewRows(changeLogColumns).
				AddRow(changeLogRow(id, createdAt)...))

		changeLogs, err := AnkaaDbRepository{}.ListChangeLogs(context.Background(), mock,
			models.ChangeLogQuery{
				EntityType: "Truck",
				EntityId:   "truck-1",
			})

		assert.NoError(t, err)
		assert.Len(t, changeLogs, 1)
		assert.Equal(t, id, changeLogs[0].Id)
		assert.Nil(t, changeLogs[0].UserName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with user join", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		id := uuid.New()
		createdAt := time.Now()

		// The join must cast the uuid side to text: user_id can hold
		// non-uuid actors ("system"), and a text-to-uuid cast would abort
		// the whole read on the first such row.
		mock.ExpectQuery(`SELECT .* FROM change_logs cl LEFT JOIN users u on u\.id::text = cl\.user_id`).
			WithArgs("Truck", "truck-1").
			WillReturnRows(pgxmock.NewRows(append(changeLogColumns, "user_name")).
				AddRow(append(changeLogRow(id, createdAt), pure_utils.Ptr("Alice"))...))

		changeLogs, err := AnkaaDbRepository{}.ListChangeLogs(context.Background(), mock,
			models.ChangeLogQuery{
				EntityType:  "Truck",
				EntityId:    "truck-1",
				IncludeUser: true,
			})

		assert.NoError(t, err)
		assert.Len(t, changeLogs, 1)
		assert.Equal(t, "Alice", *changeLogs[0].UserName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with user join, non-uuid actor", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		id := uuid.New()
		row := changeLogRow(id, time.Now())
		row[8] = pure_utils.Ptr("system")

		mock.ExpectQuery(`LEFT JOIN users u on u\.id::text = cl\.user_id`).
			WithArgs("Truck", "truck-1").
			WillReturnRows(pgxmock.NewRows(append(changeLogColumns, "user_name")).
				AddRow(append(row, (*string)(nil))...))

		changeLogs, err := AnkaaDbRepository{}.ListChangeLogs(context.Background(), mock,
			models.ChangeLogQuery{
				EntityType:  "Truck",
				EntityId:    "truck-1",
				IncludeUser: true,
			})

		assert.NoError(t, err)
		assert.Len(t, changeLogs, 1)
		assert.Equal(t, "system", *changeLogs[0].UserId)
		assert.Nil(t, changeLogs[0].UserName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		row := changeLogRow(uuid.New(), time.Now())
		row[3] = "EXPLODE"

		mock.ExpectQuery("SELECT .* FROM change_logs").
			WithArgs("Truck", "truck-1").
			WillReturnRows(pgxmock.NewRows(changeLogColumns).AddRow(row...))

		_, err = AnkaaDbRepository{}.ListChangeLogs(context.Background(), mock,
			models.ChangeLogQuery{
				EntityType: "Truck",
				EntityId:   "truck-1",
			})

		assert.ErrorIs(t, err, models.ErrUnknownChangeLogAction)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
