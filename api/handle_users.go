package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ankaa-erp/backend/dto"
	"github.com/ankaa-erp/backend/models"
	"github.com/ankaa-erp/backend/pure_utils"
	"github.com/ankaa-erp/backend/usecases"
)

func handleListUsers(uc usecases.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		users, err := uc.ListUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"users": pure_utils.Map(users, dto.AdaptUser),
		})
	}
}

func handleGetUser(uc usecases.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userId, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
			return
		}

		user, err := uc.GetUser(ctx, userId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUser(user)})
	}
}

func handleCreateUser(uc usecases.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateUserBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		user, err := uc.CreateUser(ctx, models.CreateUserInput{
			Name:  body.Name,
			Email: body.Email,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": dto.AdaptUser(user)})
	}
}
