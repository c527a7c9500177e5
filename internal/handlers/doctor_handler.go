package handlers

import (
	"net/http"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/services"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctors      *services.DoctorService
	slots        *services.SlotService
	appointments *services.AppointmentService
}

func NewDoctorHandler(doctors *services.DoctorService, slots *services.SlotService, appointments *services.AppointmentService) *DoctorHandler {
	return &DoctorHandler{doctors: doctors, slots: slots, appointments: appointments}
}

// Create POST /doctors (admin)
func (h *DoctorHandler) Create(c *gin.Context) {
	var input models.CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	doctor, err := h.doctors.CreateDoctor(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "doctor created", doctor)
}

// List GET /doctors
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "doctors", doctors)
}

// Get GET /doctors/:id
func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	doctor, err := h.doctors.GetDoctor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "doctor detail", doctor)
}

// Schedule GET /doctors/:id/schedule
func (h *DoctorHandler) Schedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	slots, err := h.slots.ListByDoctor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "doctor schedule", slots)
}

// Appointments GET /doctors/:id/appointments
func (h *DoctorHandler) Appointments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	appointments, err := h.appointments.ListByDoctor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "doctor appointments", appointments)
}
