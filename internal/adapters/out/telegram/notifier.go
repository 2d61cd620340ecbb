// Package telegram mirrors new-order notices to the operations chat.
package telegram

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const Gateway = "telegram"

type Config struct {
	Token  string
	ChatID int64
	// Endpoint overrides tgbotapi.APIEndpoint, mainly for tests.
	Endpoint string
}

type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier connects to the Bot API; it fails when the token is rejected.
func NewNotifier(cfg Config) (*Notifier, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.Token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: cfg.ChatID}, nil
}

// Notify forwards branch new-order messages; other kinds are ignored.
func (n *Notifier) Notify(_ context.Context, message *notification.Message) error {
	if message.Kind() != notification.KindBranchNewOrder {
		return nil
	}

	text := fmt.Sprintf("[%s] %s\n\n%s", message.OrderNumber(), message.Recipient(), message.Body())
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return errs.NewUpstreamGatewayErrorWithCause(Gateway, "send_message", err)
	}
	return nil
}
