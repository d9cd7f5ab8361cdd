package mapping

import (
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/SscSPs/statement_analytics/internal/models"
)

// ToDomainTag converts a model Tag to a domain Tag
func ToDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainTagSlice converts a slice of model Tags to a slice of domain Tags
func ToDomainTagSlice(ms []models.Tag) []domain.Tag {
	ds := make([]domain.Tag, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTag(m)
	}
	return ds
}

// ToDomainTagTotalSlice converts per-tag total rows to domain values.
func ToDomainTagTotalSlice(ms []models.TagTotal) []domain.TagTotal {
	ds := make([]domain.TagTotal, len(ms))
	for i, m := range ms {
		ds[i] = domain.TagTotal{
			TagID:            m.TagID,
			Name:             m.Name,
			Color:            m.Color,
			Total:            m.Total,
			TransactionCount: m.TransactionCount,
		}
	}
	return ds
}
