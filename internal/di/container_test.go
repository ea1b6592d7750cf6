package di

import (
	"testing"

	"fame_list/configs"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Production(t *testing.T) {
	logger := NewLogger(configs.App{Environment: "prod"}, configs.Logger{AppName: "fame_list"})
	assert.NotNil(t, logger)
	assert.False(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_Development(t *testing.T) {
	logger := NewLogger(configs.App{Environment: "dev"}, configs.Logger{AppName: "fame_list"})
	assert.NotNil(t, logger)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}
