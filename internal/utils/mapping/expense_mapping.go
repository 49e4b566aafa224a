package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelExpense converts a domain ExpenseTransaction to a model ExpenseTransaction
func ToModelExpense(d domain.ExpenseTransaction) models.ExpenseTransaction {
	return models.ExpenseTransaction{
		ExpenseID:       d.ExpenseID,
		CompanyID:       d.CompanyID,
		TransactionNo:   d.TransactionNo,
		ExpenseDate:     d.ExpenseDate,
		Amount:          d.Amount,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		Narration:       d.Narration,
		Status:          models.ExpenseStatus(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model ExpenseTransaction to a domain ExpenseTransaction
func ToDomainExpense(m models.ExpenseTransaction) domain.ExpenseTransaction {
	return domain.ExpenseTransaction{
		ExpenseID:       m.ExpenseID,
		CompanyID:       m.CompanyID,
		TransactionNo:   m.TransactionNo,
		ExpenseDate:     m.ExpenseDate,
		Amount:          m.Amount,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Narration:       m.Narration,
		Status:          domain.ExpenseStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model ExpenseTransactions to domain ExpenseTransactions
func ToDomainExpenseSlice(ms []models.ExpenseTransaction) []domain.ExpenseTransaction {
	ds := make([]domain.ExpenseTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
