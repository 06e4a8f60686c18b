package service

import "context"

// Mailer delivers password-reset notifications. Delivery is an external
// collaborator; failures are logged by callers, never surfaced to the
// requesting client.
type Mailer interface {
	// SendPasswordReset sends the reset token to the given address.
	SendPasswordReset(ctx context.Context, email, token string) error
}
