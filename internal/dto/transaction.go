package dto

import (
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/SscSPs/statement_analytics/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// FilterParams defines the query parameters shared by transaction listings and pattern discovery.
type FilterParams struct {
	Flow      string `form:"flow" binding:"omitempty,oneof=all in out"`
	Search    string `form:"search" binding:"max=200"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilter converts the bound parameters into a domain filter. Dates were validated on bind.
func (p FilterParams) ToFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Flow:      domain.ParseFlowType(p.Flow),
		Search:    p.Search,
		StartDate: parseDate(p.StartDate),
		EndDate:   parseDate(p.EndDate),
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

// ListTransactionsParams defines query parameters for searching transactions.
type ListTransactionsParams struct {
	FilterParams
	SortBy    string  `form:"sortBy"`
	Order     string  `form:"order" binding:"omitempty,oneof=asc desc"`
	Page      int     `form:"page" binding:"omitempty,min=1"`
	Limit     int     `form:"limit" binding:"omitempty,min=1"`
	Offset    int     `form:"offset" binding:"omitempty,min=0"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID                  int64           `json:"id"`
	AccountNumber       string          `json:"accountNumber"`
	AccountName         *string         `json:"accountName"`
	CounterpartyAccount *string         `json:"counterpartyAccount"`
	TransactionNumber   string          `json:"transactionNumber"`
	AccountingDate      string          `json:"accountingDate"`
	ValueDate           string          `json:"valueDate"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	Description         *string         `json:"description"`
	Details             *string         `json:"details"`
	Message             *string         `json:"message"`
	TagID               *int64          `json:"tagID"`
	TagName             *string         `json:"tagName"`
	TagColor            *string         `json:"tagColor"`
	ImportBatchID       string          `json:"importBatchID"`
	ImportedAt          time.Time       `json:"importedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                  t.ID,
		AccountNumber:       t.AccountNumber,
		AccountName:         t.AccountName,
		CounterpartyAccount: t.CounterpartyAccount,
		TransactionNumber:   t.TransactionNumber,
		AccountingDate:      t.AccountingDate.Format(dateLayout),
		ValueDate:           t.ValueDate.Format(dateLayout),
		Amount:              t.Amount,
		Currency:            t.Currency,
		Description:         t.Description,
		Details:             t.Details,
		Message:             t.Message,
		TagID:               t.TagID,
		TagName:             t.TagName,
		TagColor:            t.TagColor,
		ImportBatchID:       t.ImportBatchID,
		ImportedAt:          t.ImportedAt,
	}
}

// ListTransactionsResponse is one page of a transaction search.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	Pagination   pagination.Meta       `json:"pagination"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of results into its DTO.
func ToListTransactionsResponse(page *domain.TransactionPage, opts domain.ListOptions, nextToken *string) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(page.Transactions)),
		Total:        page.Total,
		Limit:        opts.Limit,
		Offset:       opts.Offset,
		Pagination:   pagination.NewMeta(opts.Offset, opts.Limit, page.Total),
		NextToken:    nextToken,
	}
	for i, t := range page.Transactions {
		res.Transactions[i] = ToTransactionResponse(t)
	}
	return res
}

// MatchResponse is the compact transaction rendering used by similarity and patterns.
type MatchResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	Tag         *string         `json:"tag"`
}

func toMatchResponses(matches []domain.Match) []MatchResponse {
	res := make([]MatchResponse, len(matches))
	for i, m := range matches {
		res[i] = MatchResponse{
			ID:          m.ID,
			Date:        m.Date.Format(dateLayout),
			Amount:      m.Amount,
			Description: m.Description,
			Tag:         m.Tag,
		}
	}
	return res
}

// SimilarResponse lists the transactions resembling a reference transaction.
type SimilarResponse struct {
	TransactionID int64           `json:"transactionID"`
	OriginalTag   *string         `json:"originalTag"`
	Matches       []MatchResponse `json:"matches"`
}

// ToSimilarResponse converts a domain.SimilarResult to its DTO.
func ToSimilarResponse(r *domain.SimilarResult) SimilarResponse {
	return SimilarResponse{
		TransactionID: r.TransactionID,
		OriginalTag:   r.OriginalTag,
		Matches:       toMatchResponses(r.Matches),
	}
}

// PatternResponse is one recurring group of transactions.
type PatternResponse struct {
	Type         string          `json:"type"`
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	Count        int             `json:"count"`
	Transactions []MatchResponse `json:"transactions"`
}

// ToListPatternResponse converts discovered patterns to DTOs.
func ToListPatternResponse(patterns []domain.Pattern) []PatternResponse {
	res := make([]PatternResponse, len(patterns))
	for i, p := range patterns {
		res[i] = PatternResponse{
			Type:         string(p.Basis),
			Key:          p.Key,
			Label:        p.Label,
			Count:        p.Count,
			Transactions: toMatchResponses(p.Transactions),
		}
	}
	return res
}
