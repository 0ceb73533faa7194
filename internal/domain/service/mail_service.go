package service

import (
	"context"

	"rangriti/internal/domain/entity"
)

// MailService defines the interface for outbound transactional email.
// Sends happen synchronously inside the triggering request; a failure
// surfaces to the caller as an upstream failure.
type MailService interface {
	// SendWelcome greets a freshly registered account.
	SendWelcome(ctx context.Context, to, name string) error

	// SendOrderConfirmation confirms a placed order to the buyer.
	SendOrderConfirmation(ctx context.Context, to string, order *entity.Order) error
}
