package setup

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fame_list/configs"
	"fame_list/internal/db"
	"fame_list/internal/db/models"
	"fame_list/internal/db/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminUsername        = "admin"
	adminEmail           = "admin@noolshy.com"
	adminDefaultPassword = "admin123"
	adminPanelDir        = "admin-panel"
	headerWidth          = 60
)

type Wizard struct {
	config configs.SetupConfig
	prompt *prompter
	out    io.Writer
	logger *zap.SugaredLogger
}

func NewWizard(config configs.SetupConfig, in io.Reader, out io.Writer, assumeYes bool, logger *zap.SugaredLogger) *Wizard {
	return &Wizard{
		config: config,
		prompt: newPrompter(in, out, assumeYes),
		out:    out,
		logger: logger,
	}
}

func (w *Wizard) Run(ctx context.Context) error {
	w.header("FAME LIST SETUP")

	w.header("DATABASE SETTINGS")
	dbConfig := w.collectDBConfig()

	if err := w.writeDBConfig(dbConfig); err != nil {
		return err
	}

	if err := w.writeEnvFile(dbConfig); err != nil {
		return err
	}

	w.header("DATABASE SCHEMA")
	database, err := db.StartDB(ctx, dbConfig, w.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer database.Close()

	if err := db.Migrate(database, w.config.Paths.MigrationsDir, w.logger); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	fmt.Fprintln(w.out, "✅ Database schema is up to date")

	if err := w.seedAccounts(ctx, repositories.NewUserRepository(database)); err != nil {
		return err
	}

	w.header("FRONTEND")
	if err := w.ensureDirectories(); err != nil {
		return err
	}

	w.header("SETUP COMPLETE")
	w.printNextSteps()

	return nil
}

func (w *Wizard) header(text string) {
	line := strings.Repeat("=", headerWidth)
	fmt.Fprintf(w.out, "\n%s\n %s\n%s\n", line, text, line)
}

func (w *Wizard) collectDBConfig() configs.DB {
	defaults := configs.DefaultDB()

	return configs.DB{
		Host:     w.prompt.Ask("DB host", defaults.Host),
		Port:     json.Number(w.prompt.Ask("DB port", defaults.Port.String())),
		Database: w.prompt.Ask("DB name", defaults.Database),
		User:     w.prompt.Ask("DB user", defaults.User),
		Password: w.prompt.Ask("DB password", defaults.Password),
	}
}

func (w *Wizard) writeDBConfig(config configs.DB) error {
	path := w.config.Paths.DBConfig
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	if err := configs.SaveDB(path, config); err != nil {
		return fmt.Errorf("failed to save db config: %w", err)
	}

	fmt.Fprintf(w.out, "✅ DB config saved to %s\n", path)
	return nil
}

func (w *Wizard) writeEnvFile(config configs.DB) error {
	secret, err := randomHex(32)
	if err != nil {
		return fmt.Errorf("failed to generate jwt secret: %w", err)
	}

	path := w.config.Paths.EnvFile
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create env dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(envFileContent(config, secret)), 0o600); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}

	fmt.Fprintf(w.out, "✅ .env written to %s\n", path)
	return nil
}

func envFileContent(config configs.DB, jwtSecret string) string {
	return fmt.Sprintf(`# Database
DB_HOST=%s
DB_PORT=%s
DB_NAME=%s
DB_USER=%s
DB_PASSWORD=%s

# JWT secret
JWT_SECRET=%s

# Server
PORT=3000
NODE_ENV=development
`, config.Host, config.Port, config.Database, config.User, config.Password, jwtSecret)
}

// seedAccounts creates the default admin and the reserved account that
// stamps processed applications. Existing accounts are left untouched.
func (w *Wizard) seedAccounts(ctx context.Context, userRepository repositories.UserRepository) error {
	systemPassword, err := randomHex(32)
	if err != nil {
		return fmt.Errorf("failed to generate system password: %w", err)
	}

	accounts := []struct {
		username string
		email    string
		password string
		role     models.UserRole
	}{
		{adminUsername, adminEmail, adminDefaultPassword, models.UserRoleAdmin},
		{w.config.Accounts.SystemUsername, "", systemPassword, models.UserRoleAdmin},
	}

	for _, account := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		created, err := userRepository.CreateIfNotExists(ctx, &models.User{
			Username: account.username,
			Email:    account.email,
			Password: string(hash),
			Role:     account.role,
		})
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", account.username, err)
		}

		if created {
			fmt.Fprintf(w.out, "✅ %s account created: %s\n", account.role.CapitalizedString(), account.username)
		} else {
			fmt.Fprintf(w.out, "ℹ️  account already exists: %s\n", account.username)
		}
	}

	return nil
}

func (w *Wizard) directories() []string {
	return []string{
		w.config.Paths.ImageDir,
		filepath.Join(filepath.Dir(w.config.Paths.Snapshot), "data"),
		adminPanelDir,
	}
}

func (w *Wizard) ensureDirectories() error {
	for _, dir := range w.directories() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		fmt.Fprintf(w.out, "✅ Directory ready: %s\n", dir)
	}

	return nil
}

func (w *Wizard) printNextSteps() {
	fmt.Fprintln(w.out, "\n🎉 Project set up!")
	fmt.Fprintln(w.out, "\nNext steps:")
	fmt.Fprintln(w.out, "1. Start the server: cd backend && npm start")
	fmt.Fprintln(w.out, "2. Open http://localhost:3000")
	fmt.Fprintln(w.out, "3. Sign in to the admin panel:")
	fmt.Fprintf(w.out, "   Login: %s\n", adminUsername)
	fmt.Fprintf(w.out, "   Password: %s\n", adminDefaultPassword)
	fmt.Fprintln(w.out, "\n⚠️  Change the admin password!")
}

func randomHex(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
