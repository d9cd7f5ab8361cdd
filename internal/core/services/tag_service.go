package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
)

type tagService struct {
	BaseService
	tagRepo      portsrepo.TagRepositoryWithTx
	defaultColor string
	validate     *validator.Validate
}

// TagServiceOption is a functional option for configuring the tag service
type TagServiceOption func(*tagService)

// WithDefaultTagColor sets the color given to tags created without one.
func WithDefaultTagColor(color string) TagServiceOption {
	return func(s *tagService) {
		if color != "" {
			s.defaultColor = color
		}
	}
}

// NewTagService creates a new tag service with the provided options
func NewTagService(tagRepo portsrepo.TagRepositoryWithTx, options ...TagServiceOption) portssvc.TagSvcFacade {
	svc := &tagService{
		tagRepo:      tagRepo,
		defaultColor: domain.DefaultTagColor,
		validate:     validator.New(),
	}
	for _, option := range options {
		option(svc)
	}
	if svc.validate.Var(svc.defaultColor, domain.TagColorRule) != nil {
		svc.defaultColor = domain.DefaultTagColor
	}
	return svc
}

var _ portssvc.TagSvcFacade = (*tagService)(nil)

// checkTagName rejects blank names. Names are otherwise kept verbatim.
func checkTagName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: tag name is required", apperrors.ErrValidation)
	}
	return name, nil
}

func (s *tagService) GetOrCreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	return s.CreateTag(ctx, name, "")
}

func (s *tagService) CreateTag(ctx context.Context, name, color string) (*domain.Tag, error) {
	name, err := checkTagName(name)
	if err != nil {
		return nil, err
	}
	if color == "" {
		color = s.defaultColor
	}
	if err := s.validate.Var(color, domain.TagColorRule); err != nil {
		return nil, fmt.Errorf("%w: invalid tag color %q", apperrors.ErrValidation, color)
	}

	tx, err := s.tagRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tag creation: %w", err)
	}
	defer s.tagRepo.Rollback(ctx, tx)

	tag, err := s.tagRepo.GetOrCreateTagTx(ctx, tx, name, color)
	if err != nil {
		s.LogError(ctx, err, "Failed to get or create tag", slog.String("tag_name", name))
		return nil, fmt.Errorf("failed to get or create tag %q: %w", name, err)
	}
	if err := s.tagRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit tag %q: %w", name, err)
	}
	return tag, nil
}

func (s *tagService) AssignTag(ctx context.Context, transactionID, tagID int64) error {
	tx, err := s.tagRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tag assignment: %w", err)
	}
	defer s.tagRepo.Rollback(ctx, tx)

	if err := s.tagRepo.AssignTagTx(ctx, tx, transactionID, tagID); err != nil {
		s.LogError(ctx, err, "Failed to assign tag",
			slog.Int64("transaction_id", transactionID),
			slog.Int64("tag_id", tagID))
		return fmt.Errorf("failed to assign tag %d to transaction %d: %w", tagID, transactionID, err)
	}
	if err := s.tagRepo.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit tag assignment: %w", err)
	}
	return nil
}

func (s *tagService) TagTransaction(ctx context.Context, transactionID int64, tagName string) (*domain.Tag, error) {
	name, err := checkTagName(tagName)
	if err != nil {
		return nil, err
	}

	tx, err := s.tagRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tagging: %w", err)
	}
	defer s.tagRepo.Rollback(ctx, tx)

	tag, err := s.tagRepo.GetOrCreateTagTx(ctx, tx, name, s.defaultColor)
	if err != nil {
		s.LogError(ctx, err, "Failed to get or create tag", slog.String("tag_name", name))
		return nil, fmt.Errorf("failed to get or create tag %q: %w", name, err)
	}
	if err := s.tagRepo.AssignTagTx(ctx, tx, transactionID, tag.ID); err != nil {
		s.LogError(ctx, err, "Failed to tag transaction",
			slog.Int64("transaction_id", transactionID),
			slog.String("tag_name", name))
		return nil, fmt.Errorf("failed to tag transaction %d: %w", transactionID, err)
	}
	if err := s.tagRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit tagging: %w", err)
	}
	return tag, nil
}

func (s *tagService) BulkAssignTag(ctx context.Context, transactionIDs []int64, tagName string) (int64, error) {
	if len(transactionIDs) == 0 {
		return 0, fmt.Errorf("%w: at least one transaction id is required", apperrors.ErrValidation)
	}
	name, err := checkTagName(tagName)
	if err != nil {
		return 0, err
	}

	tx, err := s.tagRepo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin bulk tagging: %w", err)
	}
	defer s.tagRepo.Rollback(ctx, tx)

	tag, err := s.tagRepo.GetOrCreateTagTx(ctx, tx, name, s.defaultColor)
	if err != nil {
		s.LogError(ctx, err, "Failed to get or create tag", slog.String("tag_name", name))
		return 0, fmt.Errorf("failed to get or create tag %q: %w", name, err)
	}
	updated, err := s.tagRepo.BulkAssignTagTx(ctx, tx, transactionIDs, tag.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to bulk assign tag",
			slog.String("tag_name", name),
			slog.Int("requested", len(transactionIDs)))
		return 0, fmt.Errorf("failed to bulk assign tag %q: %w", name, err)
	}
	if err := s.tagRepo.Commit(ctx, tx); err != nil {
		return 0, fmt.Errorf("failed to commit bulk tagging: %w", err)
	}

	s.LogInfo(ctx, "Bulk tag applied",
		slog.String("tag_name", name),
		slog.Int("requested", len(transactionIDs)),
		slog.Int64("updated", updated))
	return updated, nil
}

func (s *tagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tags")
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if tags == nil {
		return []domain.Tag{}, nil
	}
	return tags, nil
}

func (s *tagService) TagTotals(ctx context.Context) ([]domain.TagTotal, error) {
	totals, err := s.tagRepo.ListTagTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute tag totals")
		return nil, fmt.Errorf("failed to compute tag totals: %w", err)
	}
	if totals == nil {
		return []domain.TagTotal{}, nil
	}
	return totals, nil
}
