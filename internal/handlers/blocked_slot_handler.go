package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EspacoLashStudio/studio-agenda/internal/audit"
	"github.com/EspacoLashStudio/studio-agenda/internal/cache"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/middleware"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
)

// ======================================================
// HANDLER
// ======================================================

type BlockedSlotHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewBlockedSlotHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *BlockedSlotHandler {
	return &BlockedSlotHandler{
		db:    db,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// LIST
// ======================================================
func (h *BlockedSlotHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("user_id = ?", userID)

	if date := c.Query("date"); date != "" {
		q = q.Where("blocked_date = ?", date)
	}

	var blocks []models.BlockedSlot
	if err := q.
		Order("blocked_date ASC, blocked_time ASC").
		Find(&blocks).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocks"})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// ======================================================
// CREATE
// ======================================================

type CreateBlockRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	// Time nulo = dia inteiro
	Time   *string `json:"time"`
	Reason string  `json:"reason"`
}

func (h *BlockedSlotHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Time != nil {
		if _, err := timegrid.ParseTime(*req.Time); err != nil {
			httperr.BadRequest(c, "invalid_time_format", "Horário inválido.")
			return
		}
	}

	block, err := models.NewBlockedSlot(userID, req.Date, req.Time, req.Reason)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Bloqueio inválido.")
		return
	}

	if err := h.db.Create(block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	h.cache.InvalidateDay(c.Request.Context(), userID, req.Date)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "block_created",
		Entity:   "blocked_slot",
		EntityID: &block.ID,
		Metadata: map[string]any{
			"date":     req.Date,
			"full_day": block.IsFullDay,
		},
	})

	c.JSON(http.StatusCreated, block)
}

// ======================================================
// DELETE
// ======================================================

// Remove uma linha só: bloqueios pontuais duplicados têm vida
// própria, apagar um não apaga os gêmeos.
func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var block models.BlockedSlot
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&block).Error; err != nil {
		httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}

	h.cache.InvalidateDay(c.Request.Context(), userID, block.BlockedDate)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "block_removed",
		Entity:   "blocked_slot",
		EntityID: &block.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
