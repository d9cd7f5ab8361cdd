package dto

import "github.com/SscSPs/statement_analytics/internal/core/domain"

// ImportResponse reports the outcome of a statement upload.
type ImportResponse struct {
	BatchID   string `json:"batchID"`
	FileName  string `json:"fileName"`
	Encoding  string `json:"encoding"`
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`
	Discarded int    `json:"discarded"`
}

// ToImportResponse converts a domain.ImportResult to its DTO.
func ToImportResponse(r *domain.ImportResult) ImportResponse {
	return ImportResponse(*r)
}
