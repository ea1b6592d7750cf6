package tgbot

import (
	"fame_list/configs"
	"fame_list/internal/db/models"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type announcer struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.SugaredLogger
}

// Announcer tells the community chat about a freshly promoted member.
type Announcer interface {
	Announce(member *models.Member, application *models.Application) error
}

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(*models.Member, *models.Application) error {
	return nil
}

func NewNopAnnouncer() Announcer {
	return nopAnnouncer{}
}

// NewAnnouncer returns a no-op announcer when Telegram is not configured.
func NewAnnouncer(config configs.Telegram, logger *zap.SugaredLogger) (Announcer, error) {
	if !config.Enabled() {
		logger.Info("telegram announcements disabled")
		return NewNopAnnouncer(), nil
	}

	logger.Info("creating bot")
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(config.Token, config.APIEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	logger.Infow("bot created", "username", bot.Self.UserName)

	return &announcer{
		bot:    bot,
		chatID: config.ChatID,
		logger: logger,
	}, nil
}

func (a *announcer) Announce(member *models.Member, application *models.Application) error {
	if _, err := a.bot.Send(announcementMessage(a.chatID, member, application)); err != nil {
		return fmt.Errorf("failed to send announcement: %w", err)
	}

	a.logger.Infow("member announced", "memberID", member.ID, "chatID", a.chatID)
	return nil
}

func announcementMessage(chatID int64, member *models.Member, application *models.Application) tgbotapi.MessageConfig {
	parseMode := tgbotapi.ModeMarkdownV2
	escape := func(text string) string {
		return tgbotapi.EscapeText(parseMode, text)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("В фейм\\-лист добавлен новый участник \\#%d\n\n", member.ID))
	builder.WriteString(fmt.Sprintf("*%s* %s\n", escape(member.Nickname), escape(member.Username)))
	builder.WriteString(fmt.Sprintf("Категория: %s\n", escape(member.Category)))
	builder.WriteString(fmt.Sprintf("Проект: %s\n", escape(member.Project)))

	if application != nil {
		if links := application.ParsedLinks(); len(links) > 0 {
			builder.WriteString("\nСсылки:\n")
			for _, link := range links {
				builder.WriteString(escape(link) + "\n")
			}
		}
	}

	message := tgbotapi.NewMessage(chatID, builder.String())
	message.ParseMode = parseMode
	message.DisableWebPagePreview = true
	return message
}
