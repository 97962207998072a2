package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
)

// Notifier delivers a challenge code to a voter out of band. The voting
// core treats delivery as an external collaborator: failures surface as
// internal errors, never as challenge-state changes.
type Notifier interface {
	SendCode(ctx context.Context, identity, displayName, code string) error
}

// LogNotifier writes the code to the server log instead of delivering it.
// Development use only.
type LogNotifier struct{}

func (LogNotifier) SendCode(_ context.Context, identity, displayName, code string) error {
	slog.Info("challenge code issued",
		"identity", identity,
		"displayName", displayName,
		"code", code,
	)
	return nil
}

// SMTPNotifier emails the code via a plain-auth SMTP relay.
type SMTPNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (n SMTPNotifier) SendCode(_ context.Context, identity, displayName, code string) error {
	msg := fmt.Appendf(nil,
		"From: %s\r\nTo: %s\r\nSubject: Your voting challenge code\r\n\r\n"+
			"Hello %s,\r\n\r\n"+
			"Your one-time voting code is: %s\r\n\r\n"+
			"It expires in 10 minutes. Never share this code with anyone.\r\n",
		n.From, identity, displayName, code)

	addr := n.Host + ":" + n.Port
	a := smtp.PlainAuth("", n.Username, n.Password, n.Host)
	if err := smtp.SendMail(addr, a, n.From, []string{identity}, msg); err != nil {
		return fmt.Errorf("failed to send challenge code: %w", err)
	}
	return nil
}
