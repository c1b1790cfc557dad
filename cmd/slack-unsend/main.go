package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("slack-unsend exited", "error", err)
		os.Exit(1)
	}
}
