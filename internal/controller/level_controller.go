package controller

import (
	"errors"

	"gamification_backend/internal/service"
	"gamification_backend/internal/util"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type LevelController struct {
	LevelService *service.LevelService
}

func NewLevelController(levelService *service.LevelService) *LevelController {
	return &LevelController{LevelService: levelService}
}

// @Summary List levels
// @Tags levels
// @Produce json
// @Success 200 {object} util.Response
// @Router /levels [get]
func (c *LevelController) ListLevels(ctx *gin.Context) {
	levels, err := c.LevelService.ListLevels()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, levels)
}

// @Summary Get a level
// @Tags levels
// @Produce json
// @Param id path int true "Level ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /levels/{id} [get]
func (c *LevelController) GetLevel(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	level, err := c.LevelService.GetLevel(uint(param.ID))
	if errors.Is(err, util.ErrLevelNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, level)
}

// @Summary Create a level
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param level body service.LevelRequest true "Level"
// @Success 201 {object} util.Response
// @Router /admin/levels [post]
func (c *LevelController) CreateLevel(ctx *gin.Context) {
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	level, err := c.LevelService.CreateLevel(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, level)
}

// @Summary Update a level
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID"
// @Param level body service.LevelRequest true "Level"
// @Success 200 {object} util.Response
// @Router /admin/levels/{id} [put]
func (c *LevelController) UpdateLevel(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	level, err := c.LevelService.UpdateLevel(uint(param.ID), req)
	if errors.Is(err, util.ErrLevelNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, level)
}

// @Summary Delete a level
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID"
// @Success 200 {object} util.Response
// @Router /admin/levels/{id} [delete]
func (c *LevelController) DeleteLevel(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	err := c.LevelService.DeleteLevel(uint(param.ID))
	if errors.Is(err, util.ErrLevelNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Level deleted"})
}
