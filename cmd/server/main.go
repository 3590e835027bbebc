package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mediaclay/mediaclay-api/internal/app"
	applog "github.com/mediaclay/mediaclay-api/internal/platform/logging"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	ctx := context.Background()
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(ctx, "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}
	if err := loadDotEnv(".env"); err != nil {
		applog.LogWarn(ctx, "ignoring .env file", zap.Error(err))
	}

	srv := app.NewServer(listenAddr(os.Getenv), app.NewRouter(Version))

	applog.LogInfo(ctx, "server listening", zap.String("addr", srv.Addr), zap.String("version", Version))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.LogFatal(ctx, "listen failed", err, zap.String("addr", srv.Addr))
	}
}

// listenAddr returns the address for the port handed over by the hosting
// supervisor through PORT.
func listenAddr(getenv func(string) string) string {
	port := getenv("PORT")
	if port == "" {
		port = app.DefaultPort
	}
	return ":" + port
}

// loadDotEnv fills missing environment variables from path. Variables that
// are already set win. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
