package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

var ErrEntriesUnbalanced = errors.New("ledger entries do not balance")

// postingService turns business events into balanced ledger entry batches.
//
// Account direction convention: every account follows its natural balance
// side. Customer receivables are debit-balance assets, so a new loan debits
// the receivable and repayments credit it. The collateral taken in against a
// pledge is carried as Pledged Items with a matching custody liability, so
// each batch balances regardless of the loan-to-value ratio.
type postingService struct {
	coaSvc     portssvc.COASvcFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	pledgeRepo portsrepo.PledgeReader
}

// NewPostingService creates a new posting engine.
func NewPostingService(coaSvc portssvc.COASvcFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, pledgeRepo portsrepo.PledgeReader) portssvc.PostingSvc {
	return &postingService{
		coaSvc:     coaSvc,
		ledgerRepo: ledgerRepo,
		pledgeRepo: pledgeRepo,
	}
}

// Ensure postingService implements the portssvc.PostingSvc interface
var _ portssvc.PostingSvc = (*postingService)(nil)

// persistBatch stamps IDs and audit fields on the batch entries, asserts the
// balance invariant and hands the entries to the repository for atomic save.
func (s *postingService) persistBatch(ctx context.Context, batch *domain.EntryBatch, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(batch.Entries) == 0 {
		return nil
	}
	if !batch.Balanced() {
		// The protocols are constructed to balance; tripping this is a bug.
		logger.Error("Entry batch does not balance",
			slog.String("reference_type", string(batch.ReferenceType)),
			slog.String("reference_id", batch.ReferenceID),
			slog.String("debits", batch.TotalDebits().String()),
			slog.String("credits", batch.TotalCredits().String()),
		)
		return fmt.Errorf("%w: debits %s, credits %s for %s %s",
			ErrEntriesUnbalanced, batch.TotalDebits(), batch.TotalCredits(), batch.ReferenceType, batch.ReferenceID)
	}

	now := time.Now().UTC()
	for i := range batch.Entries {
		batch.Entries[i].EntryID = uuid.NewString()
		batch.Entries[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
	}

	if err := s.ledgerRepo.SaveEntries(ctx, batch.Entries); err != nil {
		logger.Error("Failed to save ledger entries",
			slog.String("error", err.Error()),
			slog.String("reference_type", string(batch.ReferenceType)),
			slog.String("reference_id", batch.ReferenceID),
		)
		return fmt.Errorf("failed to save ledger entries: %w", err)
	}

	logger.Info("Ledger entries posted",
		slog.String("reference_type", string(batch.ReferenceType)),
		slog.String("reference_id", batch.ReferenceID),
		slog.Int("entries", len(batch.Entries)),
	)
	return nil
}

// PostPledgeEntries records the disbursement entries of a new pledge:
// the loan advanced to the customer, the collateral taken into custody and
// any first-month interest collected up front.
// Implements portssvc.PostingSvc
func (s *postingService) PostPledgeEntries(ctx context.Context, pledge domain.Pledge, paymentAccountCode string, userID string) error {
	if paymentAccountCode == "" {
		paymentAccountCode = domain.CodeCash
	}

	pledgedItems, err := s.coaSvc.ResolveAccount(ctx, pledge.CompanyID, domain.CodePledgedItems)
	if err != nil {
		return err
	}
	custody, err := s.coaSvc.ResolveAccount(ctx, pledge.CompanyID, domain.CodeCustomerDeposits)
	if err != nil {
		return err
	}
	payment, err := s.coaSvc.ResolveAccount(ctx, pledge.CompanyID, paymentAccountCode)
	if err != nil {
		return err
	}
	receivable, err := s.coaSvc.GetOrCreateCustomerReceivable(ctx, pledge.CompanyID, pledge.CustomerID, userID)
	if err != nil {
		return err
	}

	batch := domain.NewEntryBatch(pledge.CompanyID, pledge.PledgeDate, domain.RefPledge, pledge.PledgeID)

	// Collateral in custody, valued at the appraised maximum.
	batch.AddDebit(pledgedItems.AccountID, pledge.MaximumValue, fmt.Sprintf("Pledged items received - %s", pledge.PledgeNo))
	batch.AddCredit(custody.AccountID, pledge.MaximumValue, fmt.Sprintf("Custody of pledged items - %s", pledge.PledgeNo))

	// Loan advanced to the customer.
	batch.AddDebit(receivable.AccountID, pledge.LoanAmount, fmt.Sprintf("Loan advanced against pledge - %s", pledge.PledgeNo))
	batch.AddCredit(payment.AccountID, pledge.LoanAmount, fmt.Sprintf("Loan disbursed - %s", pledge.PledgeNo))

	// First month interest collected up front.
	if pledge.FirstMonthInterest.IsPositive() {
		interestIncome, err := s.coaSvc.ResolveAccount(ctx, pledge.CompanyID, domain.CodeInterestIncome)
		if err != nil {
			return err
		}
		batch.AddDebit(payment.AccountID, pledge.FirstMonthInterest, fmt.Sprintf("First month interest received - %s", pledge.PledgeNo))
		batch.AddCredit(interestIncome.AccountID, pledge.FirstMonthInterest, fmt.Sprintf("First month interest - %s", pledge.PledgeNo))
	}

	return s.persistBatch(ctx, batch, userID)
}

// PostReceiptEntries records the collection entries of a posted receipt.
// Receivable credits are grouped per customer receivable account resolved
// through each item's pledge.
// Implements portssvc.PostingSvc
func (s *postingService) PostReceiptEntries(ctx context.Context, receipt domain.PledgeReceipt, items []domain.ReceiptItem, userID string) error {
	cash, err := s.coaSvc.ResolveAccount(ctx, receipt.CompanyID, domain.CodeCash)
	if err != nil {
		return err
	}

	totalInterest := decimal.Zero
	totalDiscount := decimal.Zero
	totalPenalty := decimal.Zero

	// Principal credits grouped by receivable account, preserving first-seen order.
	principalByAccount := make(map[string]decimal.Decimal)
	accountOrder := make([]string, 0, len(items))
	for _, item := range items {
		totalInterest = totalInterest.Add(item.PaidInterest)
		totalDiscount = totalDiscount.Add(item.PaidDiscount)
		totalPenalty = totalPenalty.Add(item.PaidPenalty)

		if !item.PaidPrincipal.IsPositive() {
			continue
		}
		pledge, err := s.pledgeRepo.FindPledgeByID(ctx, item.PledgeID)
		if err != nil {
			return fmt.Errorf("failed to resolve pledge %s for receipt item: %w", item.PledgeID, err)
		}
		receivable, err := s.coaSvc.GetOrCreateCustomerReceivable(ctx, receipt.CompanyID, pledge.CustomerID, userID)
		if err != nil {
			return err
		}
		if _, seen := principalByAccount[receivable.AccountID]; !seen {
			accountOrder = append(accountOrder, receivable.AccountID)
		}
		principalByAccount[receivable.AccountID] = principalByAccount[receivable.AccountID].Add(item.PaidPrincipal)
	}

	batch := domain.NewEntryBatch(receipt.CompanyID, receipt.ReceiptDate, domain.RefReceipt, receipt.ReceiptID)

	// Money in.
	batch.AddDebit(cash.AccountID, receipt.ReceiptAmount, fmt.Sprintf("Receipt - %s", receipt.ReceiptNo))

	for _, accountID := range accountOrder {
		batch.AddCredit(accountID, principalByAccount[accountID], fmt.Sprintf("Principal repaid - %s", receipt.ReceiptNo))
	}

	if totalInterest.IsPositive() {
		interestIncome, err := s.coaSvc.ResolveAccount(ctx, receipt.CompanyID, domain.CodeInterestIncome)
		if err != nil {
			return err
		}
		batch.AddCredit(interestIncome.AccountID, totalInterest, fmt.Sprintf("Interest received - %s", receipt.ReceiptNo))
	}
	if totalDiscount.IsPositive() {
		discount, err := s.coaSvc.GetOrCreateAccount(ctx, receipt.CompanyID, domain.CodeInterestDiscount, "Interest Discount", domain.Expenses, userID)
		if err != nil {
			return err
		}
		batch.AddDebit(discount.AccountID, totalDiscount, fmt.Sprintf("Interest discount allowed - %s", receipt.ReceiptNo))
	}
	if totalPenalty.IsPositive() {
		penalty, err := s.coaSvc.GetOrCreateAccount(ctx, receipt.CompanyID, domain.CodePenaltyIncome, "Penalty Income", domain.Income, userID)
		if err != nil {
			return err
		}
		batch.AddCredit(penalty.AccountID, totalPenalty, fmt.Sprintf("Penalty collected - %s", receipt.ReceiptNo))
	}

	return s.persistBatch(ctx, batch, userID)
}

// PostBankTransferEntries records the transfer of a pledge to a bank: the
// customer receivable is cleared into jewel inventory and the bank financing
// pair is opened.
// Implements portssvc.PostingSvc
func (s *postingService) PostBankTransferEntries(ctx context.Context, bankPledge domain.BankPledge, userID string) error {
	pledge, err := s.pledgeRepo.FindPledgeByID(ctx, bankPledge.PledgeID)
	if err != nil {
		return fmt.Errorf("failed to resolve pledge %s for bank transfer: %w", bankPledge.PledgeID, err)
	}
	receivable, err := s.coaSvc.GetOrCreateCustomerReceivable(ctx, bankPledge.CompanyID, pledge.CustomerID, userID)
	if err != nil {
		return err
	}
	inventory, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeJewelInventory, "Jewel Inventory", domain.Assets, userID)
	if err != nil {
		return err
	}
	bankAsset, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeBankPledgeAsset, "Bank Pledge Asset", domain.Assets, userID)
	if err != nil {
		return err
	}
	bankLoan, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeBankLoanPayable, "Bank Loan Payable", domain.Liabilities, userID)
	if err != nil {
		return err
	}

	batch := domain.NewEntryBatch(bankPledge.CompanyID, bankPledge.TransferDate, domain.RefBankPledge, bankPledge.BankPledgeID)

	// Move the shop exposure out of the customer receivable into inventory.
	exposure := bankPledge.OriginalShopLoan.Add(bankPledge.OutstandingInterest)
	if exposure.IsPositive() {
		batch.AddDebit(inventory.AccountID, exposure, fmt.Sprintf("Jewels re-pledged to %s - %s", bankPledge.BankName, pledge.PledgeNo))
		batch.AddCredit(receivable.AccountID, exposure, fmt.Sprintf("Receivable transferred to bank - %s", pledge.PledgeNo))
	}

	// Open the bank financing pair.
	batch.AddDebit(bankAsset.AccountID, bankPledge.BankLoanAmount, fmt.Sprintf("Pledge asset with %s - %s", bankPledge.BankName, pledge.PledgeNo))
	batch.AddCredit(bankLoan.AccountID, bankPledge.BankLoanAmount, fmt.Sprintf("Bank loan availed from %s - %s", bankPledge.BankName, pledge.PledgeNo))

	return s.persistBatch(ctx, batch, userID)
}

// PostBankRedemptionEntries records the buy-back of a bank pledge: bank loan
// principal, interest and charges paid, any gain or loss on the price
// difference, and the restored shop exposure.
// Implements portssvc.PostingSvc
func (s *postingService) PostBankRedemptionEntries(ctx context.Context, bankPledge domain.BankPledge, redemption domain.BankRedemption, userID string) error {
	pledge, err := s.pledgeRepo.FindPledgeByID(ctx, bankPledge.PledgeID)
	if err != nil {
		return fmt.Errorf("failed to resolve pledge %s for bank redemption: %w", bankPledge.PledgeID, err)
	}
	cash, err := s.coaSvc.ResolveAccount(ctx, bankPledge.CompanyID, domain.CodeCash)
	if err != nil {
		return err
	}
	bankLoan, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeBankLoanPayable, "Bank Loan Payable", domain.Liabilities, userID)
	if err != nil {
		return err
	}

	batch := domain.NewEntryBatch(bankPledge.CompanyID, redemption.RedemptionDate, domain.RefBankRedemption, redemption.RedemptionID)

	// Pay down the bank loan principal.
	batch.AddDebit(bankLoan.AccountID, redemption.AmountPaidToBank, fmt.Sprintf("Bank loan repaid to %s - %s", bankPledge.BankName, pledge.PledgeNo))
	batch.AddCredit(cash.AccountID, redemption.AmountPaidToBank, fmt.Sprintf("Payment to %s - %s", bankPledge.BankName, pledge.PledgeNo))

	if redemption.InterestPaid.IsPositive() {
		bankInterest, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeBankInterestExp, "Bank Interest Expense", domain.Expenses, userID)
		if err != nil {
			return err
		}
		batch.AddDebit(bankInterest.AccountID, redemption.InterestPaid, fmt.Sprintf("Bank interest paid - %s", pledge.PledgeNo))
		batch.AddCredit(cash.AccountID, redemption.InterestPaid, fmt.Sprintf("Bank interest payment - %s", pledge.PledgeNo))
	}
	if redemption.BankCharges.IsPositive() {
		charges, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeBankChargesExp, "Bank Charges", domain.Expenses, userID)
		if err != nil {
			return err
		}
		batch.AddDebit(charges.AccountID, redemption.BankCharges, fmt.Sprintf("Bank charges - %s", pledge.PledgeNo))
		batch.AddCredit(cash.AccountID, redemption.BankCharges, fmt.Sprintf("Bank charges payment - %s", pledge.PledgeNo))
	}

	// Gain or loss on the difference between what was paid and the valuation.
	if !redemption.PriceDifference.IsZero() {
		gainLoss, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeGainLossOnPledges, "Gain/Loss on Pledges", domain.Income, userID)
		if err != nil {
			return err
		}
		diff := redemption.PriceDifference.Abs()
		if redemption.PriceDifference.IsPositive() {
			batch.AddDebit(cash.AccountID, diff, fmt.Sprintf("Gain on bank redemption - %s", pledge.PledgeNo))
			batch.AddCredit(gainLoss.AccountID, diff, fmt.Sprintf("Gain on bank redemption - %s", pledge.PledgeNo))
		} else {
			batch.AddDebit(gainLoss.AccountID, diff, fmt.Sprintf("Loss on bank redemption - %s", pledge.PledgeNo))
			batch.AddCredit(cash.AccountID, diff, fmt.Sprintf("Loss on bank redemption - %s", pledge.PledgeNo))
		}
	}

	// Restore the shop exposure that was parked in jewel inventory.
	if bankPledge.OriginalShopLoan.IsPositive() {
		receivable, err := s.coaSvc.GetOrCreateCustomerReceivable(ctx, bankPledge.CompanyID, pledge.CustomerID, userID)
		if err != nil {
			return err
		}
		inventory, err := s.coaSvc.GetOrCreateAccount(ctx, bankPledge.CompanyID, domain.CodeJewelInventory, "Jewel Inventory", domain.Assets, userID)
		if err != nil {
			return err
		}
		batch.AddDebit(receivable.AccountID, bankPledge.OriginalShopLoan, fmt.Sprintf("Receivable restored after bank redemption - %s", pledge.PledgeNo))
		batch.AddCredit(inventory.AccountID, bankPledge.OriginalShopLoan, fmt.Sprintf("Jewels returned from bank - %s", pledge.PledgeNo))
	}

	return s.persistBatch(ctx, batch, userID)
}

// PostExpenseEntries records the two-line entry of an expense payment.
// Implements portssvc.PostingSvc
func (s *postingService) PostExpenseEntries(ctx context.Context, expense domain.ExpenseTransaction, userID string) error {
	batch := domain.NewEntryBatch(expense.CompanyID, expense.ExpenseDate, domain.RefExpense, expense.ExpenseID)
	batch.AddDebit(expense.DebitAccountID, expense.Amount, fmt.Sprintf("%s - %s", expense.Narration, expense.TransactionNo))
	batch.AddCredit(expense.CreditAccountID, expense.Amount, fmt.Sprintf("Payment - %s", expense.TransactionNo))
	return s.persistBatch(ctx, batch, userID)
}

// ReverseEntries writes one flipped entry per original entry of the given
// reference. Returns the number of entries reversed; zero is not an error.
// Implements portssvc.PostingSvc
func (s *postingService) ReverseEntries(ctx context.Context, companyID string, refType domain.ReferenceType, refID string, userID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	originals, err := s.ledgerRepo.FindEntriesByReference(ctx, companyID, refType, refID)
	if err != nil {
		return 0, fmt.Errorf("failed to load entries for reversal: %w", err)
	}
	if len(originals) == 0 {
		logger.Info("No entries to reverse",
			slog.String("reference_type", string(refType)),
			slog.String("reference_id", refID),
		)
		return 0, nil
	}

	batch := domain.NewEntryBatch(companyID, time.Now().UTC(), domain.ReversalOf(refType), refID)
	for _, entry := range originals {
		narration := fmt.Sprintf("Reversal of: %s", entry.Narration)
		if entry.EntryType == domain.Debit {
			batch.AddCredit(entry.AccountID, entry.Amount, narration)
		} else {
			batch.AddDebit(entry.AccountID, entry.Amount, narration)
		}
	}

	if err := s.persistBatch(ctx, batch, userID); err != nil {
		return 0, err
	}
	return len(originals), nil
}

// GetEntriesByReference retrieves the entries recorded for one reference.
// Implements portssvc.PostingSvc
func (s *postingService) GetEntriesByReference(ctx context.Context, companyID string, refType domain.ReferenceType, refID string) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntriesByReference(ctx, companyID, refType, refID)
}
