package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EspacoLashStudio/studio-agenda/internal/middleware"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// validateWorkingDays garante no máximo uma linha por dia da semana
// e, nos dias ativos, uma janela legível com início antes do fim.
// Devolve o código do erro, ou "" quando o payload está bom.
func validateWorkingDays(days []WorkingDayConfig) string {
	seen := make(map[int]bool)

	for _, d := range days {
		if seen[d.Weekday] {
			return "duplicate_weekday"
		}
		seen[d.Weekday] = true

		if !d.Active {
			continue
		}

		start, err := timegrid.ParseTime(d.StartTime)
		if err != nil {
			return "invalid_time_format"
		}

		end, err := timegrid.ParseTime(d.EndTime)
		if err != nil {
			return "invalid_time_format"
		}

		if start >= end {
			return "invalid_working_window"
		}
	}

	return ""
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var hours []models.WorkingHours
	if err := h.db.
		Where("user_id = ?", userID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update substitui o expediente inteiro de uma vez (delete-all +
// insert) — nunca patch incremental, para nunca sobrar mais de um
// registro ativo por dia da semana.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if errCode := validateWorkingDays(req.Days); errCode != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errCode})
		return
	}

	if err := h.db.Where("user_id = ?", userID).Delete(&models.WorkingHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		wh := models.WorkingHours{
			UserID:    userID,
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		}
		toCreate = append(toCreate, wh)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
