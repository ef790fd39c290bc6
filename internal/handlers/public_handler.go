package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

// Página pública de agendamento, chaveada pelo slug da profissional.
// Só oferece horários do catálogo aprovado; o "ver de novo" depois de
// um conflito é sempre reconsultar a disponibilidade.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *schedule.GetAvailability
	createUC       *schedule.CreateAppointment
	cancelUC       *schedule.CancelAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *schedule.GetAvailability,
	createUC *schedule.CreateAppointment,
	cancelUC *schedule.CancelAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
	}
}

func (h *PublicHandler) resolveUser(c *gin.Context) (*models.User, bool) {
	slug := c.Param("slug")

	var user models.User
	if err := h.db.Where("slug = ?", slug).First(&user).Error; err != nil {
		httperr.NotFound(c, "studio_not_found", "Estúdio não encontrado.")
		return nil, false
	}

	if !user.PublicBookingEnabled {
		httperr.NotFound(c, "public_booking_disabled", "Agendamento online desativado.")
		return nil, false
	}

	return &user, true
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("user_id = ? AND active = true", user.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"studio": gin.H{
			"name":   user.StudioName,
			"slug":   user.Slug,
			"phone":  user.Phone,
			"person": user.Name,
		},
		"services": services,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	result, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			UserID:    user.ID,
			ServiceID: uint(serviceID),
			Date:      dateStr,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// CREATE
// ======================================================

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), schedule.CreateAppointmentInput{
		UserID:      user.ID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Source:      "public",
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"public_ref": ap.PublicRef,
		"date":       ap.AppointmentDate,
		"time":       ap.AppointmentTime,
		"status":     ap.Status,
	})
}

// ======================================================
// LOOKUP / CANCEL POR REFERÊNCIA
// ======================================================

func (h *PublicHandler) GetByRef(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Service", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("user_id = ? AND public_ref = ?", user.ID, c.Param("ref")).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_ref": ap.PublicRef,
		"date":       ap.AppointmentDate,
		"time":       ap.AppointmentTime,
		"status":     ap.Status,
		"service":    ap.Service.Name,
	})
}

func (h *PublicHandler) CancelByRef(c *gin.Context) {
	user, ok := h.resolveUser(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("user_id = ? AND public_ref = ?", user.ID, c.Param("ref")).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	cancelled, err := h.cancelUC.Execute(c.Request.Context(), user.ID, ap.ID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_ref": cancelled.PublicRef,
		"status":     cancelled.Status,
	})
}
