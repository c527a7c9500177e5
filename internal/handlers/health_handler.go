package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store repository.Store
}

func NewHealthHandler(store repository.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Printf("[Health] database ping failed: %v", err)
		utils.APIResponse(c, http.StatusServiceUnavailable, false, "database unavailable", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Server OK!", gin.H{"database": "up"})
}
