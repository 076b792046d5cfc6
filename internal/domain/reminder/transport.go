package reminder

import "context"

// EmailSender delivers the email channel of a reminder. The transport owns
// subject and body templating per tier; it only needs the eligible
// appointment. A non-nil error means the send failed; the dispatcher records
// it, it is never fatal.
type EmailSender interface {
	SendReminder(ctx context.Context, tier Tier, e Eligible) error
}

// Messenger delivers an already-rendered text body to a phone number over
// the chat channel (a WhatsApp gateway in production).
type Messenger interface {
	SendText(ctx context.Context, phone string, body string) error
}
