package models

import "time"

const (
	TokenConfirmEmail  = "confirm_email"
	TokenPasswordReset = "password_reset"
	TokenEmailChange   = "email_change"
	TokenEmailRevert   = "email_revert"
	TokenUnlock        = "unlock"
)

// UserToken é um token opaco de uso único usado nos fluxos de e-mail
// (confirmação de conta, reset de senha, troca de e-mail, desbloqueio).
type UserToken struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`

	Kind  string `gorm:"size:30;not null" json:"kind"`
	Token string `gorm:"size:64;uniqueIndex;not null" json:"-"`

	// Payload carrega dados do fluxo (ex: novo e-mail na troca).
	Payload string `gorm:"size:255" json:"-"`

	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *UserToken) Usable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
