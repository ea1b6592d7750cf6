package db

import (
	"context"
	"errors"
	"testing"

	"fame_list/configs"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOptions(t *testing.T) {
	options := Options(configs.DB{
		Host:     "db.internal",
		Port:     "6543",
		Database: "noolshy_fame",
		User:     "fame",
		Password: "secret",
	})

	assert.Equal(t, "db.internal:6543", options.Addr)
	assert.Equal(t, "fame", options.User)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, "noolshy_fame", options.Database)
}

func TestDBLogger_AfterQueryLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	hook := dbLogger{logger: zap.New(core).Sugar()}

	assert.NoError(t, hook.AfterQuery(context.Background(), &pg.QueryEvent{}))
	assert.Equal(t, 0, logs.Len())

	assert.NoError(t, hook.AfterQuery(context.Background(), &pg.QueryEvent{Err: errors.New("boom")}))
	assert.Equal(t, 1, logs.FilterMessage("query failed").Len())
}
