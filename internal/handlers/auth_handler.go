package handlers

import (
	"net/http"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/middleware"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/services"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "registration successful", res)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "login successful", res)
}

// Me GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.APIResponse(c, http.StatusUnauthorized, false, "unauthorized", nil)
		return
	}

	user, err := h.auth.ResolveUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "user profile", user)
}
