package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"fame_list"`
	URL     string `env:"LOGGER_URL"`
}
