package pgsql

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	"github.com/pawnsoft/pawnledger/internal/models"
	"github.com/pawnsoft/pawnledger/internal/utils/mapping"
)

const ledgerColumns = `entry_id, company_id, account_id, entry_type, amount, entry_date, reference_type, reference_id, narration, created_at, created_by, last_updated_at, last_updated_by, running_balance`

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountEntrySupport
}

// NewPgxLedgerRepository creates a new repository for ledger entry data.
// The account repository provides row locking and balance updates within the
// same transaction.
func NewPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountEntrySupport) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// signedAmount returns the entry amount signed by its type: debits positive,
// credits negative. Account balances are carried debit-positive.
func signedAmount(e domain.LedgerEntry) decimal.Decimal {
	if e.EntryType == domain.Credit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// SaveEntries persists the entries of one batch atomically. Within a single
// transaction it locks the touched accounts, stamps each entry with the
// account's running balance after that entry, inserts the rows and applies
// the net balance change per account.
func (r *PgxLedgerRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	accountIDSet := make(map[string]struct{})
	for _, e := range entries {
		accountIDSet[e.AccountID] = struct{}{}
	}
	accountIDs := make([]string, 0, len(accountIDSet))
	for id := range accountIDSet {
		accountIDs = append(accountIDs, id)
	}
	sort.Strings(accountIDs)

	return r.WithTransaction(ctx, func(ctx context.Context) error {
		tx, _ := txFromContext(ctx)

		accounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
		if err != nil {
			return err
		}

		// Walk the entries in order, tracking each account's balance so the
		// stamped running balances reflect intra-batch movements too.
		running := make(map[string]decimal.Decimal, len(accounts))
		for id, account := range accounts {
			running[id] = account.Balance
		}
		balanceChanges := make(map[string]decimal.Decimal, len(accounts))

		query := `
			INSERT INTO ledger_entries (` + ledgerColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
		`
		batch := &pgx.Batch{}
		for _, e := range entries {
			delta := signedAmount(e)
			running[e.AccountID] = running[e.AccountID].Add(delta)
			balanceChanges[e.AccountID] = balanceChanges[e.AccountID].Add(delta)

			m := mapping.ToModelLedgerEntry(e)
			m.RunningBalance = running[e.AccountID]
			batch.Queue(query,
				m.EntryID, m.CompanyID, m.AccountID, m.EntryType, m.Amount,
				m.EntryDate, m.ReferenceType, m.ReferenceID, m.Narration,
				m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.RunningBalance,
			)
		}

		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert ledger entry %s: %w", entries[i].EntryID, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close ledger entry batch: %w", err)
		}

		userID := entries[0].CreatedBy
		return r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID)
	})
}

func scanLedgerEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.AccountID,
		&m.EntryType,
		&m.Amount,
		&m.EntryDate,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Narration,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.RunningBalance,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindEntriesByReference retrieves all entries recorded for one source
// document, in insertion order.
func (r *PgxLedgerRepository) FindEntriesByReference(ctx context.Context, companyID string, refType domain.ReferenceType, refID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE company_id = $1 AND reference_type = $2 AND reference_id = $3
		ORDER BY created_at, entry_id;
	`
	rows, err := r.conn(ctx).Query(ctx, query, companyID, string(refType), refID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for %s %s: %w", refType, refID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", rows.Err())
	}

	return entries, nil
}

// ListEntriesByAccount retrieves a paginated list of entries for a specific
// account, newest first.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, companyID string, accountID string, limit int, offset int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE company_id = $1 AND account_id = $2
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.conn(ctx).Query(ctx, query, companyID, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", rows.Err())
	}

	return entries, nil
}
