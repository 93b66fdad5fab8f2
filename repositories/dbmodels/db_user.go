package dbmodels

import (
	"time"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/utils"
	"github.com/google/uuid"
)

type DbUser struct {
	Id        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = utils.ColumnList[DbUser]()

func AdaptUser(db DbUser) (models.User, error) {
	return models.User{
		Id:        db.Id,
		Name:      db.Name,
		Email:     db.Email,
		CreatedAt: db.CreatedAt,
	}, nil
}
