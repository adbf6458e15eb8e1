package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/OficinaTechBR/workshop-api/internal/config"
)

// Mailer é o contrato consumido pelos fluxos de conta. A entrega é
// colaborador externo: falha de envio é logada, nunca derruba o fluxo.
type Mailer interface {
	Send(to, subject, body string) error
}

// ===============================
// SMTP
// ===============================

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTP(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from, to, subject, body,
	)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	addr := m.host + ":" + m.port
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

// ===============================
// Log (dev / testes)
// ===============================

// LogMailer só registra o e-mail no log. Usado quando SMTP_HOST não está
// configurado.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("mail to=%s subject=%q body=%q", to, subject, body)
	return nil
}

// FromConfig escolhe a implementação conforme o ambiente.
func FromConfig(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		log.Println("SMTP_HOST not set, outgoing mail will only be logged")
		return LogMailer{}
	}
	return NewSMTP(cfg)
}
