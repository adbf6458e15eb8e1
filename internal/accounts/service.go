package accounts

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/config"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/mailer"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/timezone"
)

const (
	confirmTTL = 48 * time.Hour
	resetTTL   = 30 * time.Minute
	changeTTL  = 24 * time.Hour
	revertTTL  = 7 * 24 * time.Hour
	unlockTTL  = 1 * time.Hour
)

// Service concentra os fluxos de conta por e-mail: confirmação, reset de
// senha, troca de e-mail com reversão e desbloqueio.
type Service struct {
	db     *gorm.DB
	mail   mailer.Mailer
	appURL string
}

func NewService(db *gorm.DB, mail mailer.Mailer, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		mail:   mail,
		appURL: cfg.AppURL,
	}
}

// --------------------------------------------------
// Tokens
// --------------------------------------------------

func (s *Service) issueToken(userID uint, kind, payload string, ttl time.Duration) (*models.UserToken, error) {
	t := models.UserToken{
		UserID:    userID,
		Kind:      kind,
		Token:     uuid.NewString(),
		Payload:   payload,
		ExpiresAt: timezone.Now().Add(ttl),
	}

	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) consumeToken(token, kind string) (*models.UserToken, error) {
	var t models.UserToken
	if err := s.db.
		Where("token = ? AND kind = ?", token, kind).
		First(&t).Error; err != nil {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	if !t.Usable(timezone.Now()) {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	now := timezone.Now()
	t.UsedAt = &now
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Service) send(to, subject, body string) {
	// Entrega é melhor esforço: o fluxo que originou o e-mail já foi
	// persistido e não volta atrás.
	if err := s.mail.Send(to, subject, body); err != nil {
		log.Printf("mail delivery failed to=%s: %v", to, err)
	}
}

// --------------------------------------------------
// Confirmação de conta
// --------------------------------------------------

func (s *Service) SendConfirmation(user *models.User) error {
	t, err := s.issueToken(user.ID, models.TokenConfirmEmail, "", confirmTTL)
	if err != nil {
		return err
	}

	s.send(user.Email, "Confirme sua conta",
		fmt.Sprintf("Olá %s, confirme sua conta em %s/confirm?token=%s",
			user.Name, s.appURL, t.Token))
	return nil
}

func (s *Service) ConfirmEmail(token string) (*models.User, error) {
	t, err := s.consumeToken(token, models.TokenConfirmEmail)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, t.UserID).Error; err != nil {
		return nil, err
	}

	now := timezone.Now()
	user.EmailConfirmedAt = &now
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// --------------------------------------------------
// Reset de senha
// --------------------------------------------------

func (s *Service) SendPasswordReset(user *models.User) error {
	t, err := s.issueToken(user.ID, models.TokenPasswordReset, "", resetTTL)
	if err != nil {
		return err
	}

	s.send(user.Email, "Redefinição de senha",
		fmt.Sprintf("Use %s/reset-password?token=%s para redefinir sua senha.",
			s.appURL, t.Token))
	return nil
}

func (s *Service) ResetPassword(token, newPassword string) error {
	t, err := s.consumeToken(token, models.TokenPasswordReset)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Model(&models.User{}).
		Where("id = ?", t.UserID).
		Update("password_hash", string(hashed)).Error
}

// --------------------------------------------------
// Troca de e-mail (com reversão)
// --------------------------------------------------

// RequestEmailChange manda a confirmação para o e-mail NOVO e o token de
// reversão para o e-mail ANTIGO, que continua válido por uma semana.
func (s *Service) RequestEmailChange(user *models.User, newEmail string) error {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", newEmail).Count(&count)
	if count > 0 {
		return httperr.ErrBusiness("email_in_use")
	}

	change, err := s.issueToken(user.ID, models.TokenEmailChange, newEmail, changeTTL)
	if err != nil {
		return err
	}

	revert, err := s.issueToken(user.ID, models.TokenEmailRevert, user.Email, revertTTL)
	if err != nil {
		return err
	}

	s.send(newEmail, "Confirme seu novo e-mail",
		fmt.Sprintf("Confirme a troca em %s/email/confirm?token=%s",
			s.appURL, change.Token))

	s.send(user.Email, "Seu e-mail está sendo alterado",
		fmt.Sprintf("Se não foi você, reverta em %s/email/revert?token=%s",
			s.appURL, revert.Token))

	return nil
}

func (s *Service) ApplyEmailChange(token string) (*models.User, error) {
	t, err := s.consumeToken(token, models.TokenEmailChange)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, t.UserID).Error; err != nil {
		return nil, err
	}

	user.Email = t.Payload
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// RevertEmailChange restaura o e-mail antigo e queima qualquer token de
// troca pendente do usuário.
func (s *Service) RevertEmailChange(token string) (*models.User, error) {
	t, err := s.consumeToken(token, models.TokenEmailRevert)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, t.UserID).Error; err != nil {
		return nil, err
	}

	user.Email = t.Payload
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	now := timezone.Now()
	s.db.Model(&models.UserToken{}).
		Where("user_id = ? AND kind = ? AND used_at IS NULL", user.ID, models.TokenEmailChange).
		Update("used_at", now)

	return &user, nil
}

// --------------------------------------------------
// Desbloqueio de conta
// --------------------------------------------------

func (s *Service) SendUnlock(user *models.User) error {
	t, err := s.issueToken(user.ID, models.TokenUnlock, "", unlockTTL)
	if err != nil {
		return err
	}

	s.send(user.Email, "Conta bloqueada",
		fmt.Sprintf("Muitas tentativas de login. Desbloqueie em %s/unlock?token=%s",
			s.appURL, t.Token))
	return nil
}

func (s *Service) Unlock(token string) (*models.User, error) {
	t, err := s.consumeToken(token, models.TokenUnlock)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, t.UserID).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
