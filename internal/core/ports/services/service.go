package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	COA         COASvcFacade
	Posting     PostingSvc
	Pledge      PledgeSvcFacade
	Receipt     ReceiptSvcFacade
	BankPledge  BankPledgeSvcFacade
	BankDetails BankDetailsSvcFacade
	Expense     ExpenseSvcFacade
	Customer    CustomerSvcFacade
	Scheme      SchemeSvcFacade
	Reporting   ReportingService
}
