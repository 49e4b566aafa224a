package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// BankPledgeReaderSvc defines read operations for bank pledge data
type BankPledgeReaderSvc interface {
	// GetBankPledgeByID retrieves a bank pledge, its item snapshots and any redemptions.
	GetBankPledgeByID(ctx context.Context, companyID string, bankPledgeID string) (*domain.BankPledge, []domain.BankPledgeItem, []domain.BankRedemption, error)

	// ListBankPledges retrieves a filtered, paginated list of bank pledges.
	ListBankPledges(ctx context.Context, companyID string, params dto.ListBankPledgesParams) (*dto.ListBankPledgesResponse, error)
}

// BankPledgeWriterSvc defines write operations for bank pledge data
type BankPledgeWriterSvc interface {
	// TransferToBank moves an active pledge to a bank, snapshotting its items
	// and posting the transfer entries.
	TransferToBank(ctx context.Context, companyID string, req dto.CreateBankTransferRequest, userID string) (*domain.BankPledge, error)

	// RedeemFromBank buys a bank pledge back with business money.
	RedeemFromBank(ctx context.Context, companyID string, bankPledgeID string, req dto.RedeemBankPledgeRequest, userID string) (*domain.BankRedemption, error)

	// RedeemWithReceipt buys a bank pledge back funded by a posted customer
	// receipt plus optional business top-up.
	RedeemWithReceipt(ctx context.Context, companyID string, bankPledgeID string, req dto.RedeemWithReceiptRequest, userID string) (*domain.BankRedemption, error)

	// CancelBankPledge cancels a transfer, reversing its entries and returning
	// the pledge to Active.
	CancelBankPledge(ctx context.Context, companyID string, bankPledgeID string, userID string) error
}

// BankPledgeSvcFacade combines all bank-pledge-related service interfaces
// This is a facade for clients that need access to all operations
type BankPledgeSvcFacade interface {
	BankPledgeReaderSvc
	BankPledgeWriterSvc
}
