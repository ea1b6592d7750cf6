package di

import (
	"context"
	"fame_list/configs"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(app configs.App, config configs.Logger) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "environment": app.Environment},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}
