package services

import (
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
)

// NewServiceContainer wires up all application services from the repository
// provider. The posting engine is shared by every service that writes to the
// ledger; repos.Tx binds each posting flow into one transaction.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	coaSvc := NewCOAService(repos.AccountRepo, repos.CustomerRepo)
	postingSvc := NewPostingService(coaSvc, repos.LedgerRepo, repos.PledgeRepo)

	return &portssvc.ServiceContainer{
		COA:         coaSvc,
		Posting:     postingSvc,
		Pledge:      NewPledgeService(repos.PledgeRepo, repos.SchemeRepo, repos.SequenceRepo, postingSvc, repos.Tx),
		Receipt:     NewReceiptService(repos.ReceiptRepo, repos.PledgeRepo, repos.SequenceRepo, postingSvc, repos.Tx),
		BankPledge:  NewBankPledgeService(repos.BankPledgeRepo, repos.BankDetailsRepo, repos.PledgeRepo, repos.ReceiptRepo, postingSvc, repos.Tx),
		BankDetails: NewBankDetailsService(repos.BankDetailsRepo),
		Expense:     NewExpenseService(repos.ExpenseRepo, repos.SequenceRepo, coaSvc, postingSvc, repos.Tx),
		Customer:    NewCustomerService(repos.CustomerRepo),
		Scheme:      NewSchemeService(repos.SchemeRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
