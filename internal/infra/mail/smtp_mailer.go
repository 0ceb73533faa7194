// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"rangriti/config"
	"rangriti/internal/domain/entity"
	"rangriti/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpMailer implements MailService through an SMTP relay. When no relay is
// configured the mailer degrades to logging, so development setups work
// without one.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.MailService, error) {
	smtp := cfg.SMTP
	if smtp == nil || smtp.Host == "" {
		logger.Info("SMTP not configured, outbound mail will only be logged")

		return &smtpMailer{logger: logger}, nil
	}

	client, err := gomail.NewClient(smtp.Host,
		gomail.WithPort(smtp.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(smtp.Username),
		gomail.WithPassword(smtp.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   smtp.From,
		logger: logger,
	}, nil
}

// SendWelcome greets a freshly registered account.
func (m *smtpMailer) SendWelcome(ctx context.Context, to, name string) error {
	subject := "Welcome to Rangriti"
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to Rangriti! Explore handcrafted art, meet the artists behind it, and join their workshops.\n\nThe Rangriti Team\n",
		name,
	)

	return m.send(ctx, to, subject, body)
}

// SendOrderConfirmation confirms a placed order to the buyer.
func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, to string, order *entity.Order) error {
	subject := fmt.Sprintf("Order confirmed: %s", order.ProductName)
	body := fmt.Sprintf(
		"Your order has been placed.\n\nProduct: %s\nArtist: %s\nQuantity: %d\nTotal: %.2f\nOrder ID: %s\n\nThe artist will review your order shortly.\n",
		order.ProductName,
		order.ArtistName,
		order.Quantity,
		order.Total(),
		order.ID,
	)

	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if m.client == nil {
		m.logger.Info("mail skipped, SMTP not configured",
			slog.String("to", to),
			slog.String("subject", subject),
		)

		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid mail sender")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid mail recipient")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Info("mail sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}
