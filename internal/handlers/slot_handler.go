package handlers

import (
	"net/http"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/services"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slots *services.SlotService
}

func NewSlotHandler(slots *services.SlotService) *SlotHandler {
	return &SlotHandler{slots: slots}
}

// Create POST /slots (admin)
func (h *SlotHandler) Create(c *gin.Context) {
	var input models.CreateSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	slot, err := h.slots.CreateSlot(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "slot created", slot)
}

// Available GET /slots/available
func (h *SlotHandler) Available(c *gin.Context) {
	slots, err := h.slots.ListAvailable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "available slots", slots)
}

// ByDoctor GET /slots/doctor/:doctorId
func (h *SlotHandler) ByDoctor(c *gin.Context) {
	doctorID, ok := pathID(c, "doctorId")
	if !ok {
		return
	}

	slots, err := h.slots.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "doctor slots", slots)
}

// Get GET /slots/:id
func (h *SlotHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	slot, err := h.slots.GetSlot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "slot detail", slot)
}
