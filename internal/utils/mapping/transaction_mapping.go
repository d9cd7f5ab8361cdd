package mapping

import (
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/SscSPs/statement_analytics/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:                  m.ID,
		AccountNumber:       m.AccountNumber,
		AccountName:         m.AccountName,
		CounterpartyAccount: m.CounterpartyAccount,
		TransactionNumber:   m.TransactionNumber,
		AccountingDate:      m.AccountingDate,
		ValueDate:           m.ValueDate,
		Amount:              m.Amount,
		Currency:            m.Currency,
		Description:         m.Description,
		Details:             m.Details,
		Message:             m.Message,
		TagID:               m.TagID,
		TagName:             m.TagName,
		TagColor:            m.TagColor,
		ImportBatchID:       m.ImportBatchID,
		ImportedAt:          m.ImportedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// DraftToModelTransaction converts a parsed draft into a row ready for insertion.
func DraftToModelTransaction(d domain.TransactionDraft) models.Transaction {
	return models.Transaction{
		AccountNumber:       d.AccountNumber,
		AccountName:         d.AccountName,
		CounterpartyAccount: d.CounterpartyAccount,
		TransactionNumber:   d.TransactionNumber,
		AccountingDate:      d.AccountingDate,
		ValueDate:           d.ValueDate,
		Amount:              d.Amount,
		Currency:            d.Currency,
		Description:         d.Description,
		Details:             d.Details,
		Message:             d.Message,
	}
}
