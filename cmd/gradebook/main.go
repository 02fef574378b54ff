package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/programme-lv/gradebook/internal/logging"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.New(os.Stderr, slog.LevelError, false).Error("gradebook failed", "error", err)
		os.Exit(1)
	}
}
