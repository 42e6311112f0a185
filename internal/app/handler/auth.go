package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/middleware"
	"github.com/a957924278/mogutouERP-go/internal/app/service"
)

// RegisterUser - регистрация пользователя
// @Summary Register new user
// @Description Register a new employee account with name, telephone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.AuthResponse "User registered successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Telephone already registered"
// @Router /auth/register [post]
func (h *Handler) RegisterUser(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.AuthService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrTelAlreadyRegistered) {
			fail(ctx, http.StatusConflict, err.Error())
			return
		}
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":        "success",
		"message":       "User registered successfully",
		"access_token":  response.AccessToken,
		"refresh_token": response.RefreshToken,
		"user":          response.User,
		"expires_at":    response.ExpiresAt,
	})
}

// LoginUser - аутентификация
// @Summary User login
// @Description Authenticate user with telephone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.AuthResponse "Login successful"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) LoginUser(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.AuthService.Login(req)
	if err != nil {
		fail(ctx, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RefreshToken - обновление пары токенов по refresh токену
func (h *Handler) RefreshToken(ctx *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.AuthService.RefreshTokens(req.RefreshToken)
	if err != nil {
		fail(ctx, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCurrentUser - профиль текущего пользователя
func (h *Handler) GetCurrentUser(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.Repository.GetUser(userID)
	if err != nil {
		fail(ctx, http.StatusNotFound, "user not found")
		return
	}

	user.Password = ""
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "user": user})
}

// UpdatePassword - смена пароля текущего пользователя
func (h *Handler) UpdatePassword(ctx *gin.Context) {
	var req struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.AuthService.UpdatePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidOldPassword) {
			fail(ctx, http.StatusBadRequest, err.Error())
			return
		}
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "password updated"})
}

// DeleteUser - мягкое удаление пользователя администратором
func (h *Handler) DeleteUser(ctx *gin.Context) {
	userID := ctx.Param("id")
	if userID == "" {
		fail(ctx, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.AuthService.DeleteUser(userID); err != nil {
		if errors.Is(err, ds.ErrForbidden) {
			fail(ctx, http.StatusForbidden, "admin users cannot be deleted")
			return
		}
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "user deleted"})
}
