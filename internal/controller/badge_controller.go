package controller

import (
	"errors"
	"path/filepath"

	"gamification_backend/internal/service"
	"gamification_backend/internal/util"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BadgeController struct {
	BadgeService   *service.BadgeService
	StorageService *service.StorageService
}

func NewBadgeController(badgeService *service.BadgeService, storageService *service.StorageService) *BadgeController {
	return &BadgeController{
		BadgeService:   badgeService,
		StorageService: storageService,
	}
}

// @Summary List badges
// @Description List every badge definition
// @Tags badges
// @Produce json
// @Success 200 {object} util.Response
// @Router /badges [get]
func (c *BadgeController) ListBadges(ctx *gin.Context) {
	badges, err := c.BadgeService.ListBadges()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// @Summary Get a badge
// @Description Fetch one badge by id
// @Tags badges
// @Produce json
// @Param id path int true "Badge ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /badges/{id} [get]
func (c *BadgeController) GetBadge(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	badge, err := c.BadgeService.GetBadge(uint(param.ID))
	if errors.Is(err, util.ErrBadgeNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badge)
}

// @Summary Create a badge
// @Description Create a badge definition
// @Tags badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param badge body service.BadgeRequest true "Badge"
// @Success 201 {object} util.Response
// @Router /admin/badges [post]
func (c *BadgeController) CreateBadge(ctx *gin.Context) {
	var req service.BadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	badge, err := c.BadgeService.CreateBadge(req)
	if errors.Is(err, util.ErrBadgeAlreadyExists) {
		util.Conflict(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, badge)
}

// @Summary Update a badge
// @Tags badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Param badge body service.BadgeRequest true "Badge"
// @Success 200 {object} util.Response
// @Router /admin/badges/{id} [put]
func (c *BadgeController) UpdateBadge(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	var req service.BadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	badge, err := c.BadgeService.UpdateBadge(uint(param.ID), req)
	switch {
	case errors.Is(err, util.ErrBadgeNotFound):
		util.NotFound(ctx, err.Error())
		return
	case errors.Is(err, util.ErrBadgeAlreadyExists):
		util.Conflict(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badge)
}

// @Summary Delete a badge
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Success 200 {object} util.Response
// @Router /admin/badges/{id} [delete]
func (c *BadgeController) DeleteBadge(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	err := c.BadgeService.DeleteBadge(uint(param.ID))
	if errors.Is(err, util.ErrBadgeNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Badge deleted"})
}

// @Summary Upload a badge icon
// @Description Store an icon image and attach its URL to the badge
// @Tags badges
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Param icon formData file true "Icon image"
// @Success 200 {object} util.Response
// @Router /admin/badges/{id}/icon [post]
func (c *BadgeController) UploadIcon(ctx *gin.Context) {
	var param IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	fileHeader, err := ctx.FormFile("icon")
	if err != nil {
		util.BadRequest(ctx, "icon file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	objectName := "badges/" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), objectName, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	badge, err := c.BadgeService.SetIcon(uint(param.ID), url)
	if errors.Is(err, util.ErrBadgeNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badge)
}
