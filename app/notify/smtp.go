package notify

import (
	"fmt"
	"net/mail"
	"net/smtp"

	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/config"
)

type SMTPNotifier struct{ cfg config.SMTP }

func NewSMTPNotifier(cfg config.SMTP) *SMTPNotifier { return &SMTPNotifier{cfg: cfg} }

func (n *SMTPNotifier) TaskAssigned(to models.User, task models.Task) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		n.cfg.From, to.Email, assignmentSubject(task), assignmentBody(to, task))

	// The envelope sender must be a bare address even when the header
	// carries a display name.
	sender := n.cfg.From
	if a, err := mail.ParseAddress(sender); err == nil {
		sender = a.Address
	}
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	return smtp.SendMail(addr, auth, sender, []string{to.Email}, []byte(msg))
}
