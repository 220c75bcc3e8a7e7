package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

// TelegramNotifier posts registration lifecycle updates to the staff chat.
// Send failures are logged and swallowed: a broken notifier must never undo
// a registration state change.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifySubmitted(ctx context.Context, r *domain.Registration, e *domain.EventInstance) {
	text := fmt.Sprintf(
		"*New registration awaiting review*\n\nEvent: %s\nDate (UTC): %s\nAttendee: %s (%s)",
		e.Title, formatEventDate(e), r.Name, r.Email,
	)
	if r.Status == domain.RegistrationStatusWaitlist {
		text = fmt.Sprintf(
			"*Registration waitlisted (event full)*\n\nEvent: %s\nDate (UTC): %s\nAttendee: %s (%s)",
			e.Title, formatEventDate(e), r.Name, r.Email,
		)
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyApproved(ctx context.Context, r *domain.Registration, e *domain.EventInstance) {
	text := fmt.Sprintf(
		"*Registration confirmed*\n\nEvent: %s\nDate (UTC): %s\nAttendee: %s (%s)",
		e.Title, formatEventDate(e), r.Name, r.Email,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRejected(ctx context.Context, r *domain.Registration, e *domain.EventInstance) {
	text := fmt.Sprintf(
		"*Registration rejected*\n\nEvent: %s\nDate (UTC): %s\nAttendee: %s (%s)",
		e.Title, formatEventDate(e), r.Name, r.Email,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, r *domain.Registration, e *domain.EventInstance) {
	text := fmt.Sprintf(
		"*Registration cancelled by attendee*\n\nEvent: %s\nDate (UTC): %s\nAttendee: %s (%s)",
		e.Title, formatEventDate(e), r.Name, r.Email,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

func formatEventDate(e *domain.EventInstance) string {
	const layout = "02.01.2006 15:04"
	if e.EndTime == nil {
		return e.StartTime.UTC().Format(layout)
	}
	return e.StartTime.UTC().Format(layout) + " - " + e.EndTime.UTC().Format(layout)
}
