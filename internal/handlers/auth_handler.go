package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/accounts"
	"github.com/OficinaTechBR/workshop-api/internal/audit"
	"github.com/OficinaTechBR/workshop-api/internal/config"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/loginguard"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	guard    *loginguard.Guard
	accounts *accounts.Service
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	guard *loginguard.Guard,
	accountsSvc *accounts.Service,
	auditDispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:       db,
		config:   cfg,
		guard:    guard,
		accounts: accountsSvc,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain",
			"O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_in_use", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar conta.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleClient,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar conta.")
		return
	}

	if err := h.accounts.SendConfirmation(&user); err != nil {
		httperr.Internal(c, "failed_to_send_confirmation", "Erro ao enviar confirmação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, "Conta criada. Confirme seu e-mail para entrar.", gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx := c.Request.Context()

	locked, err := h.guard.IsLocked(ctx, email)
	if err == nil && locked {
		httperr.Forbidden(c, "account_locked",
			"Conta bloqueada por excesso de tentativas. Verifique seu e-mail.")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		// Conta o erro mesmo sem usuário para não revelar cadastros.
		h.guard.RegisterFailure(ctx, email)
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		justLocked, _ := h.guard.RegisterFailure(ctx, email)
		if justLocked {
			h.accounts.SendUnlock(&user)
			h.audit.Dispatch(audit.Event{
				UserID:   &user.ID,
				Action:   "account_locked",
				Entity:   "user",
				EntityID: &user.ID,
			})
		}
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if !user.IsConfirmed() {
		httperr.Forbidden(c, "email_not_confirmed", "Confirme seu e-mail antes de entrar.")
		return
	}

	if !user.Active {
		httperr.Forbidden(c, "account_disabled", "Conta desativada.")
		return
	}

	h.guard.Reset(ctx, email)

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.OK(c, "Login realizado.", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) Confirm(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.accounts.ConfirmEmail(req.Token)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "E-mail confirmado.", gin.H{"id": user.ID, "email": user.Email})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Resposta idêntica exista o usuário ou não.
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err == nil {
		h.accounts.SendPasswordReset(&user)
	}

	httpresp.OK(c, "Se o e-mail estiver cadastrado, você receberá as instruções.", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.accounts.ResetPassword(req.Token, req.Password); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "Senha redefinida.", nil)
}

func (h *AuthHandler) Unlock(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.accounts.Unlock(req.Token)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.guard.Reset(c.Request.Context(), user.Email)

	httpresp.OK(c, "Conta desbloqueada.", nil)
}

func (h *AuthHandler) ConfirmEmailChange(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.accounts.ApplyEmailChange(req.Token)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "E-mail alterado.", gin.H{"email": user.Email})
}

func (h *AuthHandler) RevertEmailChange(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.accounts.RevertEmailChange(req.Token)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "E-mail restaurado.", gin.H{"email": user.Email})
}

// --------- Token ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
