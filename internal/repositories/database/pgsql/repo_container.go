package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := NewPgxAccountRepository(dbPool)
	ledgerRepo := NewPgxLedgerRepository(dbPool, accountRepo)
	pledgeRepo := NewPgxPledgeRepository(dbPool)
	receiptRepo := NewPgxReceiptRepository(dbPool)
	bankPledgeRepo := NewPgxBankPledgeRepository(dbPool)
	bankDetailsRepo := NewPgxBankDetailsRepository(dbPool)
	expenseRepo := NewPgxExpenseRepository(dbPool)
	customerRepo := NewPgxCustomerRepository(dbPool)
	schemeRepo := NewPgxSchemeRepository(dbPool)
	sequenceRepo := NewPgxSequenceRepository(dbPool)
	reportingRepo := NewPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		LedgerRepo:      ledgerRepo,
		PledgeRepo:      pledgeRepo,
		ReceiptRepo:     receiptRepo,
		BankPledgeRepo:  bankPledgeRepo,
		BankDetailsRepo: bankDetailsRepo,
		ExpenseRepo:     expenseRepo,
		CustomerRepo:    customerRepo,
		SchemeRepo:      schemeRepo,
		SequenceRepo:    sequenceRepo,
		ReportingRepo:   reportingRepo,
		Tx:              &BaseRepository{Pool: dbPool},
	}
}
