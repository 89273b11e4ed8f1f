package test

import (
	"context"
	"sync"
)

// SentMail captures one delivery attempt made through MailerStub.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MailerStub implements mailer.Client and records deliveries.
type MailerStub struct {
	SendFn func(context.Context, string, string, string) error

	mu   sync.Mutex
	mail []SentMail
}

// Send records the message and delegates to SendFn when configured.
func (s *MailerStub) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	s.mail = append(s.mail, SentMail{To: to, Subject: subject, Body: body})
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, to, subject, body)
	}
	return nil
}

// Sent returns a copy of the recorded deliveries.
func (s *MailerStub) Sent() []SentMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentMail, len(s.mail))
	copy(out, s.mail)
	return out
}
