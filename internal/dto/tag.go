package dto

import (
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTagRequest defines the data needed to create a tag. An existing tag with the
// same name is returned unchanged.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor,len=7"` // Optional, defaults to the configured color
}

// TagTransactionRequest names the tag to put on one transaction.
type TagTransactionRequest struct {
	TagName string `json:"tagName" binding:"required,max=100"`
}

// BulkTagRequest names a tag and the transactions to put it on.
type BulkTagRequest struct {
	TransactionIDs []int64 `json:"transactionIDs" binding:"required,min=1,dive,gt=0"`
	TagName        string  `json:"tagName" binding:"required,max=100"`
}

// BulkTagResponse reports how many transactions were tagged.
type BulkTagResponse struct {
	TagName string `json:"tagName"`
	Updated int64  `json:"updated"`
}

// TagResponse defines the data returned for a tag.
type TagResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTagResponse converts a domain.Tag to TagResponse DTO
func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

// ToListTagResponse converts a slice of domain.Tag to DTOs
func ToListTagResponse(tags []domain.Tag) []TagResponse {
	res := make([]TagResponse, len(tags))
	for i := range tags {
		res[i] = ToTagResponse(&tags[i])
	}
	return res
}

// TagTotalResponse is the sum of the transactions carrying one tag.
type TagTotalResponse struct {
	TagID            int64           `json:"tagID"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transactionCount"`
}

// ToListTagTotalResponse converts per-tag totals to DTOs.
func ToListTagTotalResponse(totals []domain.TagTotal) []TagTotalResponse {
	res := make([]TagTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = TagTotalResponse(t)
	}
	return res
}
