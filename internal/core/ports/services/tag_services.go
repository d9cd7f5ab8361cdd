package services

import (
	"context"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

// TagReaderSvc defines read operations for tags.
type TagReaderSvc interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	TagTotals(ctx context.Context) ([]domain.TagTotal, error)
}

// TagWriterSvc defines tag creation and assignment.
type TagWriterSvc interface {
	// GetOrCreateTag returns the tag called name, creating it with the default color.
	GetOrCreateTag(ctx context.Context, name string) (*domain.Tag, error)

	// CreateTag behaves like GetOrCreateTag but uses color for a new tag.
	CreateTag(ctx context.Context, name, color string) (*domain.Tag, error)

	AssignTag(ctx context.Context, transactionID, tagID int64) error

	// TagTransaction tags one transaction by tag name, creating the tag when needed.
	TagTransaction(ctx context.Context, transactionID int64, tagName string) (*domain.Tag, error)

	// BulkAssignTag tags every listed transaction in one step and returns how many were updated.
	BulkAssignTag(ctx context.Context, transactionIDs []int64, tagName string) (int64, error)
}

// TagSvcFacade combines all tag service interfaces.
type TagSvcFacade interface {
	TagReaderSvc
	TagWriterSvc
}
