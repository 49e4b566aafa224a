package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
	PledgeRepo      PledgeRepositoryFacade
	ReceiptRepo     ReceiptRepositoryFacade
	BankPledgeRepo  BankPledgeRepositoryFacade
	BankDetailsRepo BankDetailsRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	CustomerRepo    CustomerRepositoryFacade
	SchemeRepo      SchemeRepositoryFacade
	SequenceRepo    SequenceRepository
	ReportingRepo   ReportingRepository

	// Tx runs multi-repository units of work in one database transaction.
	Tx Transactor
}
