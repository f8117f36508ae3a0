package notification

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramNotifier pushes messages to the studio's admin chat. Built without
// credentials it stays disabled and logs the message text instead.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

func NewTelegramNotifier(token string, chatID int64, log *zap.Logger) *TelegramNotifier {
	log = log.With(zap.String("notifier", "telegram"))

	if token == "" || chatID == 0 {
		log.Warn("Telegram credentials not configured, notifications disabled")
		return &TelegramNotifier{log: log}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Error("Failed to initialize Telegram bot, notifications disabled", zap.Error(err))
		return &TelegramNotifier{log: log}
	}

	log.Info("Telegram notifier initialized", zap.String("bot", bot.Self.UserName))

	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		log:    log,
	}
}

// Send posts a Markdown message to the studio chat. Errors are logged, not
// returned.
func (t *TelegramNotifier) Send(ctx context.Context, text string) {
	if t.bot == nil {
		t.log.Info("Telegram notification skipped", zap.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		t.log.Warn("Telegram notification dropped", zap.Error(err))
		return
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := t.bot.Send(msg); err != nil {
		t.log.Error("Failed to send Telegram message", zap.Error(err))
	}
}
