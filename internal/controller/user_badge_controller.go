package controller

import (
	"errors"

	"gamification_backend/internal/service"
	"gamification_backend/internal/util"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserBadgeController struct {
	UserBadgeService *service.UserBadgeService
}

func NewUserBadgeController(userBadgeService *service.UserBadgeService) *UserBadgeController {
	return &UserBadgeController{UserBadgeService: userBadgeService}
}

// @Summary List user badges
// @Description List earned badges, optionally filtered by user or badge
// @Tags user-badges
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "User ID" minimum(1)
// @Param badge_id query int false "Badge ID" minimum(1)
// @Success 200 {object} util.Response
// @Router /user-badges [get]
func (c *UserBadgeController) ListUserBadges(ctx *gin.Context) {
	var query service.UserBadgeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userBadges, err := c.UserBadgeService.List(query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userBadges)
}

// @Summary Get a user badge
// @Tags user-badges
// @Produce json
// @Security BearerAuth
// @Param id path int true "User badge ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /user-badges/{id} [get]
func (c *UserBadgeController) GetUserBadge(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userBadge, err := c.UserBadgeService.Get(uint(param.ID))
	if errors.Is(err, util.ErrUserBadgeNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userBadge)
}

// @Summary Award a badge
// @Description Record that a user earned a badge
// @Tags user-badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userBadge body service.UserBadgeRequest true "Award"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /user-badges [post]
func (c *UserBadgeController) AwardBadge(ctx *gin.Context) {
	var req service.UserBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userBadge, err := c.UserBadgeService.Award(req)
	switch {
	case errors.Is(err, util.ErrInvalidTimestamp):
		util.BadRequest(ctx, err.Error())
		return
	case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrBadgeNotFound):
		util.NotFound(ctx, err.Error())
		return
	case errors.Is(err, util.ErrBadgeAlreadyEarned):
		util.Conflict(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, userBadge)
}

// @Summary Update a user badge
// @Tags user-badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User badge ID"
// @Param userBadge body service.UserBadgeRequest true "Update"
// @Success 200 {object} util.Response
// @Router /user-badges/{id} [put]
func (c *UserBadgeController) UpdateUserBadge(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	var req service.UserBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	userBadge, err := c.UserBadgeService.Update(uint(param.ID), req)
	switch {
	case errors.Is(err, util.ErrInvalidTimestamp):
		util.BadRequest(ctx, err.Error())
		return
	case errors.Is(err, util.ErrUserBadgeNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrBadgeNotFound):
		util.NotFound(ctx, err.Error())
		return
	case errors.Is(err, util.ErrBadgeAlreadyEarned):
		util.Conflict(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userBadge)
}

// @Summary Revoke a user badge
// @Tags user-badges
// @Produce json
// @Security BearerAuth
// @Param id path int true "User badge ID"
// @Success 200 {object} util.Response
// @Router /user-badges/{id} [delete]
func (c *UserBadgeController) RevokeUserBadge(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	err := c.UserBadgeService.Revoke(uint(param.ID))
	if errors.Is(err, util.ErrUserBadgeNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Badge revoked"})
}
