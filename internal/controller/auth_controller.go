package controller

import (
	"errors"

	"gamification_backend/internal/service"
	"gamification_backend/internal/util"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "User"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	user, err := c.AuthService.Register(req)
	if errors.Is(err, util.ErrEmailRegistered) {
		util.Conflict(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, validation.ToDetails(err))
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		util.Error(ctx, 401, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}
