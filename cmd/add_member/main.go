package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"fame_list/configs"
	"fame_list/internal/avatar"
	"fame_list/internal/db"
	"fame_list/internal/db/models"
	"fame_list/internal/db/repositories"
	"fame_list/internal/di"
	"fame_list/internal/services"
	"fame_list/internal/snapshot"
	tgbot "fame_list/internal/tg_bot"

	"github.com/spf13/cobra"
)

type runFunc func(ctx context.Context, out io.Writer, applicationID int) error

func main() {
	if err := newRootCommand(run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:           "add_member <application_id>",
		Short:         "Add the member described by an approved application to the fame list",
		Args:          applicationIDArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			applicationID, _ := parseApplicationID(args[0])
			return run(cmd.Context(), cmd.OutOrStdout(), applicationID)
		},
	}
}

func applicationIDArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}

	_, err := parseApplicationID(args[0])
	return err
}

func parseApplicationID(arg string) (int, error) {
	applicationID, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("application id must be a number, got %q", arg)
	}

	return applicationID, nil
}

func run(ctx context.Context, out io.Writer, applicationID int) error {
	config, err := configs.LoadAddMemberConfig()
	if err != nil {
		return err
	}

	logger := di.NewLogger(config.App, config.Logger)
	defer func() { _ = logger.Sync() }()
	logger.Info("config loaded")

	dbConfig, err := configs.LoadDB(config.Paths.DBConfig)
	if err != nil {
		logger.Errorw("failed to load db config", "error", err)
		return err
	}

	logger.Info("starting db")
	database, err := db.StartDB(ctx, dbConfig, logger)
	if err != nil {
		fmt.Fprintf(out, "❌ Database error: %v\n", err)
		return err
	}
	defer database.Close()
	logger.Info("db started")

	announcer, err := tgbot.NewAnnouncer(config.Telegram, logger)
	if err != nil {
		logger.Errorw("failed to create announcer", "error", err)
		announcer = tgbot.NewNopAnnouncer()
	}

	store := repositories.NewStore(database)
	generator := snapshot.NewGenerator(store.Repositories().Members, config.Paths.Snapshot, logger)
	service := services.NewPromotionService(
		store,
		avatar.NewMaterializer(config.Paths.ImageDir),
		generator,
		config.Accounts.SystemUsername,
		logger,
		services.WithAnnouncer(announcer),
	)

	member, err := service.Promote(ctx, applicationID)
	printResult(out, applicationID, member, generator.Path(), err)
	if err != nil {
		logger.Errorw("failed to add member", "error", err, "applicationID", applicationID)
	}

	return err
}

func printResult(out io.Writer, applicationID int, member *models.Member, snapshotPath string, err error) {
	switch {
	case errors.Is(err, services.ErrApplicationNotApproved):
		fmt.Fprintf(out, "Application %d not found or not approved\n", applicationID)
	case errors.Is(err, services.ErrAvatarFailed):
		fmt.Fprintf(out, "Avatar error: %v\n", err)
	case err != nil && member == nil:
		fmt.Fprintf(out, "Database error: %v\n", err)
	}

	if member != nil {
		fmt.Fprintf(out, "Member added with ID: %d\n", member.ID)
		fmt.Fprintf(out, "Nickname: %s\n", member.Nickname)
		fmt.Fprintf(out, "Category: %s\n", member.Category)
	}

	if err != nil {
		if member != nil {
			fmt.Fprintf(out, "Snapshot not updated: %v\n", err)
		}
		fmt.Fprintln(out, "❌ Failed to add member")
		return
	}

	fmt.Fprintf(out, "JSON snapshot updated: %s\n", snapshotPath)
	fmt.Fprintln(out, "✅ Member added!")
}
