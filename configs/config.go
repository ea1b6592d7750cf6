package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type AddMemberConfig struct {
	App      App
	Logger   Logger
	Paths    Paths
	Accounts Accounts
	Telegram Telegram
}

type SetupConfig struct {
	App      App
	Logger   Logger
	Paths    Paths
	Accounts Accounts
}

type SnapshotServiceConfig struct {
	App      App
	Logger   Logger
	Paths    Paths
	Schedule Schedule
}

func LoadAddMemberConfig() (AddMemberConfig, error) {
	var config AddMemberConfig

	if err := env.Parse(&config); err != nil {
		return AddMemberConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadSetupConfig() (SetupConfig, error) {
	var config SetupConfig

	if err := env.Parse(&config); err != nil {
		return SetupConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadSnapshotServiceConfig() (SnapshotServiceConfig, error) {
	var config SnapshotServiceConfig

	if err := env.Parse(&config); err != nil {
		return SnapshotServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
