package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// PostingSvc is the double-entry posting engine. Each Post method derives the
// balanced entry batch for one business event and persists it atomically;
// each Reverse method writes flipped entries against the same reference.
type PostingSvc interface {
	// PostPledgeEntries records the disbursement entries of a new pledge.
	PostPledgeEntries(ctx context.Context, pledge domain.Pledge, paymentAccountCode string, userID string) error

	// PostReceiptEntries records the collection entries of a posted receipt.
	PostReceiptEntries(ctx context.Context, receipt domain.PledgeReceipt, items []domain.ReceiptItem, userID string) error

	// PostBankTransferEntries records the transfer of a pledge to a bank.
	PostBankTransferEntries(ctx context.Context, bankPledge domain.BankPledge, userID string) error

	// PostBankRedemptionEntries records the buy-back of a bank pledge.
	PostBankRedemptionEntries(ctx context.Context, bankPledge domain.BankPledge, redemption domain.BankRedemption, userID string) error

	// PostExpenseEntries records the two-line entry of an expense payment.
	PostExpenseEntries(ctx context.Context, expense domain.ExpenseTransaction, userID string) error

	// ReverseEntries writes one flipped entry per original entry of the given
	// reference. Returns the number of entries reversed; zero is not an error.
	ReverseEntries(ctx context.Context, companyID string, refType domain.ReferenceType, refID string, userID string) (int, error)

	// GetEntriesByReference retrieves the entries recorded for one reference.
	GetEntriesByReference(ctx context.Context, companyID string, refType domain.ReferenceType, refID string) ([]domain.LedgerEntry, error)
}
