package db

import (
	"context"
	"fame_list/configs"
	"net"

	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type dbLogger struct {
	logger *zap.SugaredLogger
}

func (d dbLogger) BeforeQuery(c context.Context, q *pg.QueryEvent) (context.Context, error) {
	query, err := q.FormattedQuery()
	if err != nil {
		return c, nil
	}

	d.logger.Debug(string(query))
	return c, nil
}

func (d dbLogger) AfterQuery(c context.Context, q *pg.QueryEvent) error {
	if q.Err != nil {
		d.logger.Debugw("query failed", "error", q.Err)
	}
	return nil
}

func Options(config configs.DB) *pg.Options {
	return &pg.Options{
		Addr:     net.JoinHostPort(config.Host, config.Port.String()),
		User:     config.User,
		Password: config.Password,
		Database: config.Database,
	}
}

// StartDB opens the pool and checks that the server answers.
func StartDB(ctx context.Context, config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	db := pg.Connect(Options(config))
	db.AddQueryHook(dbLogger{logger})

	if err := db.Ping(ctx); err != nil {
		logger.Errorw("failed to ping db", "error", err, "addr", db.Options().Addr)
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func Migrate(db *pg.DB, dir string, logger *zap.SugaredLogger) error {
	collection := migrations.NewCollection()

	err := collection.DiscoverSQLMigrations(dir)
	if err != nil {
		logger.Errorw("failed to discover migrations", "error", err)
		return err
	}
	logger.Info("migrations discovered")

	_, _, err = collection.Run(db, "init")
	if err != nil {
		logger.Errorw("failed to init migrations", "error", err)
		return err
	}
	logger.Info("migrations initialized")

	oldVersion, newVersion, err := collection.Run(db, "up")
	if err != nil {
		logger.Errorw("failed to run migrations", "error", err)
		return err
	}

	if newVersion != oldVersion {
		logger.Infof("migrated from version %d to %d", oldVersion, newVersion)
	} else {
		logger.Infof("version is %d", oldVersion)
	}

	return nil
}
