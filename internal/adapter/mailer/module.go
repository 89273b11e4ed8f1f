package mailer

import (
	"go.uber.org/fx"

	"github.com/sureshift/backend/internal/config"
)

// Module exposes the SMTP mail client to the fx graph.
var Module = fx.Provide(newClient)

func newClient(cfg *config.Config) Client {
	return NewSMTPClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SenderEmail)
}
