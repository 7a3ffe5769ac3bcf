package controller

import (
	"errors"

	"gamification_backend/internal/service"
	"gamification_backend/internal/util"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserLevelController struct {
	UserLevelService *service.UserLevelService
}

func NewUserLevelController(userLevelService *service.UserLevelService) *UserLevelController {
	return &UserLevelController{UserLevelService: userLevelService}
}

// @Summary List user levels
// @Description List attained levels, optionally filtered by user or level
// @Tags user-levels
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "User ID" minimum(1)
// @Param level_id query int false "Level ID" minimum(1)
// @Success 200 {object} util.Response
// @Router /user-levels [get]
func (c *UserLevelController) ListUserLevels(ctx *gin.Context) {
	var query service.UserLevelQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userLevels, err := c.UserLevelService.List(query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userLevels)
}

// @Summary Get a user level
// @Tags user-levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "User level ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /user-levels/{id} [get]
func (c *UserLevelController) GetUserLevel(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userLevel, err := c.UserLevelService.Get(uint(param.ID))
	if errors.Is(err, util.ErrUserLevelNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userLevel)
}

// @Summary Grant a level
// @Description Record that a user reached a level
// @Tags user-levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userLevel body service.UserLevelRequest true "Grant"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /user-levels [post]
func (c *UserLevelController) GrantUserLevel(ctx *gin.Context) {
	var req service.UserLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userLevel, err := c.UserLevelService.Grant(req)
	switch {
	case errors.Is(err, util.ErrInvalidTimestamp):
		util.BadRequest(ctx, err.Error())
		return
	case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrLevelNotFound):
		util.NotFound(ctx, err.Error())
		return
	case errors.Is(err, util.ErrLevelAlreadyHeld):
		util.Conflict(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, userLevel)
}

// @Summary Update a user level
// @Tags user-levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User level ID"
// @Param userLevel body service.UserLevelRequest true "Update"
// @Success 200 {object} util.Response
// @Router /user-levels/{id} [put]
func (c *UserLevelController) UpdateUserLevel(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	var req service.UserLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userLevel, err := c.UserLevelService.Update(uint(param.ID), req)
	switch {
	case errors.Is(err, util.ErrInvalidTimestamp):
		util.BadRequest(ctx, err.Error())
		return
	case errors.Is(err, util.ErrUserLevelNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrLevelNotFound):
		util.NotFound(ctx, err.Error())
		return
	case errors.Is(err, util.ErrLevelAlreadyHeld):
		util.Conflict(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userLevel)
}

// @Summary Delete a user level
// @Tags user-levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "User level ID"
// @Success 200 {object} util.Response
// @Router /user-levels/{id} [delete]
func (c *UserLevelController) DeleteUserLevel(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	err := c.UserLevelService.Delete(uint(param.ID))
	if errors.Is(err, util.ErrUserLevelNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "User level deleted"})
}
