// Package mailer abstracts outbound email so the reminder scheduler can be
// tested without a mail server.
package mailer

import "context"

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
