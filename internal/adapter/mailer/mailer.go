package mailer

import (
	"context"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/sureshift/backend/internal/domain/model"
)

// Client exposes outbound email delivery.
type Client interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPClient implements Client over an authenticated SMTP connection.
type SMTPClient struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPClient creates an SMTP mail client.
func NewSMTPClient(host string, port int, username, password, from string) *SMTPClient {
	return &SMTPClient{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers a plain-text message. Dialing happens per message; the
// dispatcher owns retention and failure logging.
func (c *SMTPClient) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// OrderDetails renders the plain-text summary included in pickup
// confirmation and operator alert messages.
func OrderDetails(order *model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "Name: %s\n", order.Name)
	fmt.Fprintf(&b, "Email: %s\n", order.Email)
	fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "Pickup Date: %s\n", order.PickupDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Pickup Time: %s\n", order.PickupTime)
	fmt.Fprintf(&b, "Pickup Address: %s\n", order.PickupAddress)
	fmt.Fprintf(&b, "Drop Address: %s\n", order.DropAddress)
	fmt.Fprintf(&b, "Purpose: %s", order.Purpose)
	return b.String()
}
