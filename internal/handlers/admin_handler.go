package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

// AdminHandler concentra a gestão de usuários e a consulta de auditoria.
type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDispatcher}
}

type UpdateUserRequest struct {
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	q := h.db.Order("id ASC")

	if v := c.Query("role"); v != "" {
		q = q.Where("role = ?", v)
	}

	var users []models.User
	q.Find(&users)

	httpresp.OK(c, "Usuários listados.", users)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Role != nil {
		switch *req.Role {
		case models.RoleClient, models.RoleMechanic, models.RoleAdmin:
			user.Role = *req.Role
		default:
			httperr.BadRequest(c, "invalid_role", "Papel inválido.")
			return
		}
	}

	if req.Active != nil {
		// Um admin não pode se desativar.
		if id == adminID && !*req.Active {
			httperr.BadRequest(c, "cannot_deactivate_self", "Você não pode desativar a própria conta.")
			return
		}
		user.Active = *req.Active
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar o usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: req,
	})

	httpresp.OK(c, "Usuário atualizado.", user)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	q := h.db.Order("id DESC").Limit(200)

	if v := c.Query("entity"); v != "" {
		q = q.Where("entity = ?", v)
	}
	if v := c.Query("action"); v != "" {
		q = q.Where("action = ?", v)
	}

	var logs []models.AuditLog
	q.Find(&logs)

	httpresp.OK(c, "Auditoria listada.", logs)
}
