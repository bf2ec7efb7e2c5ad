package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"hotel-reservation/cmd/bootstrap"
	"hotel-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           hotel-reservation
// @version         1.0
// @description     Room availability checks, alternative date suggestions and reservation lifecycle.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	var cfg config.Config
	app := fx.New(
		bootstrap.Module,
		bootstrap.ServerModule,
		fx.Populate(&cfg),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("アプリケーションが停止しました", "signal", sig.Signal, "exit_code", sig.ExitCode)
	os.Exit(sig.ExitCode)
}
