package telegram

import (
	"escrow-deal-service/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers deal notifications over the Telegram Bot API. It is
// the production implementation of domain.NotificationSink.
type Notifier struct {
	bot *tgbotapi.BotAPI
}

func NewNotifier(token string) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{bot: bot}, nil
}

func (n *Notifier) Send(userID int64, notification domain.Notification) (domain.MessageRef, error) {
	msg := tgbotapi.NewMessage(userID, notification.Text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup := buildMarkup(notification.Actions); markup != nil {
		msg.ReplyMarkup = *markup
	}

	sent, err := n.bot.Send(msg)
	if err != nil {
		return domain.MessageRef{}, err
	}
	return domain.MessageRef{ChatID: userID, MessageID: sent.MessageID}, nil
}

func (n *Notifier) Edit(ref domain.MessageRef, notification domain.Notification) error {
	var err error
	if markup := buildMarkup(notification.Actions); markup != nil {
		edit := tgbotapi.NewEditMessageTextAndMarkup(ref.ChatID, ref.MessageID, notification.Text, *markup)
		edit.ParseMode = tgbotapi.ModeMarkdown
		_, err = n.bot.Send(edit)
	} else {
		edit := tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, notification.Text)
		edit.ParseMode = tgbotapi.ModeMarkdown
		_, err = n.bot.Send(edit)
	}
	return err
}

// buildMarkup renders notification actions as one inline button per row.
func buildMarkup(actions []domain.NotifyAction) *tgbotapi.InlineKeyboardMarkup {
	if len(actions) == 0 {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(action.Label, action.Data),
		))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}
