package services

import (
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Import:      NewImportService(repos.TransactionRepo),
		Tag:         NewTagService(repos.TagRepo, WithDefaultTagColor(cfg.DefaultTagColor)),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Summary:     NewSummaryService(repos.SummaryRepo, repos.TransactionRepo),
	}
}
