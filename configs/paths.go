package configs

type Paths struct {
	DBConfig      string `env:"FAME_DB_CONFIG_PATH" envDefault:"backend/config/db_config.json"`
	EnvFile       string `env:"FAME_ENV_FILE_PATH" envDefault:"backend/.env"`
	ImageDir      string `env:"FAME_IMAGE_DIR" envDefault:"frontend/img"`
	Snapshot      string `env:"FAME_SNAPSHOT_PATH" envDefault:"frontend/members_data.json"`
	MigrationsDir string `env:"FAME_MIGRATIONS_DIR" envDefault:"migrations"`
}

type Accounts struct {
	SystemUsername string `env:"FAME_SYSTEM_USERNAME" envDefault:"system"`
}
