package configs

type Telegram struct {
	Token       string `env:"TELEGRAM_ANNOUNCE_BOT_TOKEN"`
	ChatID      int64  `env:"TELEGRAM_ANNOUNCE_CHAT_ID"`
	APIEndpoint string `env:"TELEGRAM_API_ENDPOINT" envDefault:"https://api.telegram.org/bot%s/%s"`
}

func (c Telegram) Enabled() bool {
	return c.Token != "" && c.ChatID != 0
}
