package services

// ServiceContainer holds instances of all the application services.
// Handlers and the CLI reach the engine only through it.
type ServiceContainer struct {
	Import      ImportSvc
	Tag         TagSvcFacade
	Transaction TransactionSvc
	Summary     SummarySvc
}
