package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/statement_analytics/internal/commands"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := commands.NewRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
