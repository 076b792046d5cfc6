// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// TelebotNotifier implements notify.OpsNotifier using gopkg.in/telebot.v3,
// pushing operational notices to the configured admin chat.
type TelebotNotifier struct {
	bot         *telebot.Bot
	adminChatID int64
}

func NewTelebotNotifier(b *telebot.Bot, adminChatID int64) *TelebotNotifier {
	return &TelebotNotifier{bot: b, adminChatID: adminChatID}
}

// Notify sends a plain text message to the admin chat.
func (n *TelebotNotifier) Notify(text string) error {
	recipient := &telebot.User{ID: n.adminChatID}
	_, err := n.bot.Send(recipient, text, &telebot.SendOptions{})
	return err
}

// NoopNotifier is used when no Telegram token is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string) error { return nil }
