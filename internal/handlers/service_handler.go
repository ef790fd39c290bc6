package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EspacoLashStudio/studio-agenda/internal/middleware"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`

	PriceMode      string   `json:"price_mode" binding:"omitempty,oneof=fixed free range"`
	SuggestedPrice *float64 `json:"suggested_price"`

	IncludeSalonPercentage bool     `json:"include_salon_percentage"`
	SalonPercentage        *float64 `json:"salon_percentage"`

	Active *bool `json:"active"`
}

// ======================================================
// LIST
// ======================================================
func (h *ServiceHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var services []models.Service
	if err := h.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ======================================================
// CREATE
// ======================================================
func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	priceMode := req.PriceMode
	if priceMode == "" {
		priceMode = models.PriceModeFixed
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	service := models.Service{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,

		PriceMode:      priceMode,
		SuggestedPrice: req.SuggestedPrice,

		IncludeSalonPercentage: req.IncludeSalonPercentage,
		SalonPercentage:        req.SalonPercentage,

		Active: active,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

// ======================================================
// UPDATE
// ======================================================
func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMin = req.DurationMin

	if req.PriceMode != "" {
		service.PriceMode = req.PriceMode
	}
	service.SuggestedPrice = req.SuggestedPrice

	service.IncludeSalonPercentage = req.IncludeSalonPercentage
	service.SalonPercentage = req.SalonPercentage

	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	c.JSON(http.StatusOK, service)
}

// ======================================================
// DELETE (soft)
// ======================================================

// Soft delete: agendamentos antigos continuam apontando para o
// serviço e a duração deles segue resolvível.
func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
