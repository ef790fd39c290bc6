package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EspacoLashStudio/studio-agenda/internal/middleware"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
)

// Catálogo de horários do link público. Sem linhas ativas a página
// pública não oferece nada — não existe fallback para o expediente.
type BookingSlotHandler struct {
	db *gorm.DB
}

func NewBookingSlotHandler(db *gorm.DB) *BookingSlotHandler {
	return &BookingSlotHandler{db: db}
}

func (h *BookingSlotHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var slots []models.BookingTimeSlot
	if err := h.db.
		Where("user_id = ?", userID).
		Order("time_slot ASC").
		Find(&slots).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_booking_slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

type BookingSlotConfig struct {
	TimeSlot string `json:"time_slot" binding:"required"`
	Active   bool   `json:"active"`
}

type BookingSlotsUpdateRequest struct {
	Slots []BookingSlotConfig `json:"slots" binding:"required"`
}

// Update troca o catálogo inteiro, no mesmo espírito do expediente:
// delete-all + insert, um registro por horário.
func (h *BookingSlotHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookingSlotsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := make(map[string]bool)
	for _, s := range req.Slots {
		if _, err := timegrid.ParseTime(s.TimeSlot); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		if seen[s.TimeSlot] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_time_slot"})
			return
		}
		seen[s.TimeSlot] = true
	}

	sort.Slice(req.Slots, func(i, j int) bool {
		return req.Slots[i].TimeSlot < req.Slots[j].TimeSlot
	})

	if err := h.db.Where("user_id = ?", userID).Delete(&models.BookingTimeSlot{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_booking_slots"})
		return
	}

	var toCreate []models.BookingTimeSlot
	for _, s := range req.Slots {
		toCreate = append(toCreate, models.BookingTimeSlot{
			UserID:   userID,
			TimeSlot: s.TimeSlot,
			Active:   s.Active,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_booking_slots"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
