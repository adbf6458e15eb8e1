package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// ======================================================
// LIST (minhas notificações, não lidas primeiro)
// ======================================================

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.
		Where("user_id = ?", userID).
		Order("read ASC").
		Order("created_at DESC")

	if c.Query("unread") == "true" {
		q = q.Where("read = ?", false)
	}

	var notifications []models.Notification
	q.Find(&notifications)

	httpresp.OK(c, "Notificações listadas.", notifications)
}

// ======================================================
// MARK READ
// ======================================================

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var notification models.Notification
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error; err != nil {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	if !notification.Read {
		notification.Read = true
		if err := h.db.Model(&notification).Update("read", true).Error; err != nil {
			httperr.Internal(c, "failed_to_update_notification", "Erro ao marcar como lida.")
			return
		}
	}

	httpresp.OK(c, "Notificação marcada como lida.", notification)
}

// ======================================================
// MARK ALL READ
// ======================================================

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	h.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)

	httpresp.OK(c, "Notificações marcadas como lidas.", nil)
}
