package handlers

import (
	"net/http"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/middleware"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/services"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointments *services.AppointmentService
}

func NewAppointmentHandler(appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// Book POST /appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.APIResponse(c, http.StatusUnauthorized, false, "unauthorized", nil)
		return
	}

	var input models.BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	appointment, err := h.appointments.BookAppointment(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "appointment booked", appointment)
}

// MyAppointments GET /appointments/my-appointments
func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.APIResponse(c, http.StatusUnauthorized, false, "unauthorized", nil)
		return
	}

	appointments, err := h.appointments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "my appointments", appointments)
}

// Get GET /appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.appointments.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "appointment detail", appointment)
}

// Cancel POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.appointments.CancelAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "appointment cancelled", appointment)
}
