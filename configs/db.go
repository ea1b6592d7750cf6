package configs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v6"
)

const (
	defaultDBHost     = "localhost"
	defaultDBPort     = "5432"
	defaultDBDatabase = "noolshy_fame"
	defaultDBUser     = "postgres"
)

// DB holds the connection parameters stored in the db_config.json file.
// Port is kept as a json.Number because older config files carry it as a
// string.
type DB struct {
	Host     string      `json:"host" env:"DB_HOST"`
	Port     json.Number `json:"port" env:"DB_PORT"`
	Database string      `json:"database" env:"DB_NAME"`
	User     string      `json:"user" env:"DB_USER"`
	Password string      `json:"password" env:"DB_PASSWORD"`
}

func DefaultDB() DB {
	return DB{
		Host:     defaultDBHost,
		Port:     defaultDBPort,
		Database: defaultDBDatabase,
		User:     defaultDBUser,
		Password: "",
	}
}

// LoadDB reads the config file at path on top of the defaults. A missing
// file is not an error. DB_* environment variables win over both.
func LoadDB(path string) (DB, error) {
	config := DefaultDB()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return DB{}, fmt.Errorf("failed to read db config: %w", err)
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return DB{}, fmt.Errorf("failed to decode db config %s: %w", path, err)
		}
	}

	if err := env.Parse(&config); err != nil {
		return DB{}, fmt.Errorf("failed to parse db env: %w", err)
	}

	return config, nil
}

func SaveDB(path string, config DB) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o600)
}
