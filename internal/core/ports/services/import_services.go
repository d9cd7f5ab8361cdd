package services

import (
	"context"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

// ImportSvc turns statement files into stored transactions.
type ImportSvc interface {
	// ImportFile parses data and stores every row whose natural key is not already
	// present. Re-importing the same file stores nothing new.
	ImportFile(ctx context.Context, fileName string, data []byte) (*domain.ImportResult, error)
}
