package commands

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/core/services"
	"github.com/SscSPs/statement_analytics/internal/middleware"
	"github.com/SscSPs/statement_analytics/internal/platform/config"
	"github.com/SscSPs/statement_analytics/internal/repositories/database/pgsql"
	"github.com/SscSPs/statement_analytics/pkg/database"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statements",
		Short: "Import and analyse bank statement exports",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(middleware.WithLogger(contextOf(cmd), logger))
		},
	}

	rootCmd.AddCommand(
		newMigrateCommand(),
		newImportCommand(),
		newPreviewCommand(),
		newSummaryCommand(),
	)

	return rootCmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openServices connects to the configured database and wires the engine. The returned
// func closes the pool.
func openServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	return container, pool.Close, nil
}
