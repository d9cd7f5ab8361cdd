package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/SscSPs/statement_analytics/internal/core/ingest"
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/google/uuid"
)

type importService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryWithTx
	now        func() time.Time
	newBatchID func() string
}

// ImportServiceOption is a functional option for configuring the import service
type ImportServiceOption func(*importService)

// WithImportClock overrides the clock used to stamp imported rows.
func WithImportClock(now func() time.Time) ImportServiceOption {
	return func(s *importService) {
		s.now = now
	}
}

// WithBatchIDGenerator overrides how import batch ids are generated.
func WithBatchIDGenerator(gen func() string) ImportServiceOption {
	return func(s *importService) {
		s.newBatchID = gen
	}
}

// NewImportService creates a new import service with the provided options
func NewImportService(txnRepo portsrepo.TransactionRepositoryWithTx, options ...ImportServiceOption) portssvc.ImportSvc {
	svc := &importService{
		txnRepo:    txnRepo,
		now:        time.Now,
		newBatchID: uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ImportSvc = (*importService)(nil)

// ImportFile parses and stores one statement. Rows already stored, or seen earlier in the
// same file, are skipped. Either every new row is committed or none is.
func (s *importService) ImportFile(ctx context.Context, fileName string, data []byte) (*domain.ImportResult, error) {
	parsed, err := ingest.ParseFile(data)
	if err != nil {
		s.LogError(ctx, err, "Failed to decode statement", slog.String("file_name", fileName))
		return nil, err
	}

	result := &domain.ImportResult{
		BatchID:   s.newBatchID(),
		FileName:  fileName,
		Encoding:  parsed.Encoding,
		Discarded: parsed.Discarded,
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin import transaction", slog.String("batch_id", result.BatchID))
		return nil, fmt.Errorf("failed to begin import: %w", err)
	}
	defer s.txnRepo.Rollback(ctx, tx) // no-op once committed

	seen := make(map[string]struct{}, len(parsed.Drafts))
	fresh := make([]domain.TransactionDraft, 0, len(parsed.Drafts))
	for _, draft := range parsed.Drafts {
		key := draft.Key()
		if _, dup := seen[key.String()]; dup {
			result.Skipped++
			continue
		}
		seen[key.String()] = struct{}{}

		exists, err := s.txnRepo.ExistsByNaturalKeyTx(ctx, tx, key)
		if err != nil {
			s.LogError(ctx, err, "Failed to check for duplicate transaction",
				slog.String("batch_id", result.BatchID),
				slog.String("transaction_number", key.TransactionNumber))
			return nil, fmt.Errorf("failed to check duplicate %s: %w", key.TransactionNumber, err)
		}
		if exists {
			result.Skipped++
			continue
		}
		fresh = append(fresh, draft)
	}

	if len(fresh) > 0 {
		if err := s.txnRepo.InsertTransactionsTx(ctx, tx, result.BatchID, s.now(), fresh); err != nil {
			s.LogError(ctx, err, "Failed to insert imported transactions",
				slog.String("batch_id", result.BatchID),
				slog.Int("count", len(fresh)))
			return nil, fmt.Errorf("failed to insert transactions: %w", err)
		}
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit import", slog.String("batch_id", result.BatchID))
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	result.Imported = len(fresh)

	s.LogInfo(ctx, "Statement imported",
		slog.String("batch_id", result.BatchID),
		slog.String("file_name", fileName),
		slog.String("encoding", result.Encoding),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("discarded", result.Discarded))
	return result, nil
}
