package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/accounts"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/validators"
)

type MeHandler struct {
	db       *gorm.DB
	accounts *accounts.Service
}

func NewMeHandler(db *gorm.DB, accountsSvc *accounts.Service) *MeHandler {
	return &MeHandler{db: db, accounts: accountsSvc}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, "Perfil carregado.", gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"phone":     user.Phone,
		"role":      user.Role,
		"confirmed": user.IsConfirmed(),
	})
}

type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail" binding:"required,email"`
}

func (h *MeHandler) RequestEmailChange(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsEmailDomainValid(req.NewEmail) {
		httperr.BadRequest(c, "invalid_email_domain",
			"O domínio do e-mail informado não parece ser válido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if err := h.accounts.RequestEmailChange(&user, req.NewEmail); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "Confirmação enviada para o novo e-mail.", nil)
}
