package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/axanet-clients/internal/httperr"
	"github.com/BruksfildServices01/axanet-clients/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	client := c.Query("client")
	actor := c.Query("actor")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.
		WithContext(c.Request.Context()).
		Model(&models.AuditLog{})

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if client != "" {
		q = q.Where("entity_key = ?", client)
	}

	if actor != "" {
		q = q.Where("actor = ?", actor)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Error al contar registros.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Error al listar registros.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
