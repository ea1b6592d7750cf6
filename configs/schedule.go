package configs

type Schedule struct {
	Cron            string `env:"SNAPSHOT_CRON" envDefault:"*/15 * * * *"`
	HealthCheckAddr string `env:"HEALTH_CHECK_ADDR" envDefault:":8080"`
}
