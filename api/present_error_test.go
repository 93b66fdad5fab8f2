package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/utils"
)

func TestPresentError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad parameter", errors.Wrap(models.BadParameterError, "missing field"), http.StatusBadRequest},
		{"unauthorized", models.UnAuthorizedError, http.StatusUnauthorized},
		{"forbidden", models.ForbiddenError, http.StatusForbidden},
		{"not found", errors.Wrap(models.NotFoundError, "no such user"), http.StatusNotFound},
		{"conflict", errors.Wrap(models.ConflictError, "email already taken"), http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			handled := presentError(ctx, c, tt.err)

			assert.True(t, handled)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}

	t.Run("nil error is not handled", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)

		assert.False(t, presentError(ctx, c, nil))
	})
}
