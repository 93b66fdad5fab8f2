package api

import (
	"net/http"

	"github.com/ankaa-erp/backend/dto"
	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/pure_utils"
	"github.com/ankaa-erp/backend/usecases"
	"github.com/gin-gonic/gin"
)

func handleListChangeLogs(uc usecases.ChangeLogUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters dto.ChangeLogFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		changeLogs, err := uc.ListChangeLogs(ctx, models.ChangeLogQuery{
			EntityType:  filters.EntityType,
			EntityId:    filters.EntityId,
			Limit:       filters.Limit,
			Offset:      filters.Offset,
			IncludeUser: filters.IncludeUser,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"change_logs": pure_utils.Map(changeLogs, dto.AdaptChangeLog),
		})
	}
}
