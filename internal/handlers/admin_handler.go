package handlers

import (
	"net/http"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/services"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.admin.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "admin dashboard", stats)
}

// Reconcile POST /admin/reconcile
func (h *AdminHandler) Reconcile(c *gin.Context) {
	res, err := h.admin.Reconcile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "occupancy reconciled", res)
}
