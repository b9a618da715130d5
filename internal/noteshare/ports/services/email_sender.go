package services

import "context"

// EmailSender delivers transactional email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}
