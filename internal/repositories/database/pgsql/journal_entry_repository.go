package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	portsrepo "github.com/avinashn/gl_journal_app/internal/core/ports/repositories"
	"github.com/avinashn/gl_journal_app/internal/models"
	"github.com/avinashn/gl_journal_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxJournalEntryRepository persists resolved journal entry commands as ledger
// posting rows.
type PgxJournalEntryRepository struct {
	BaseRepository
}

// NewPgxJournalEntryRepository creates a new repository for journal entry data.
func NewPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalEntryRepository implements portsrepo.JournalEntryRepositoryFacade
var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

// SaveJournalEntryCommand persists all lines of a command within a single
// database transaction. The credits==debits balance invariant is enforced at
// this layer; the parsing pipeline never checks it.
func (r *PgxJournalEntryRepository) SaveJournalEntryCommand(ctx context.Context, command domain.JournalEntryCommand) (string, error) {
	if len(command.Credits) == 0 && len(command.Debits) == 0 {
		return "", fmt.Errorf("%w: command has no credit or debit entries", apperrors.ErrValidation)
	}
	if err := validateBalanced(command); err != nil {
		return "", err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	transactionID := uuid.NewString()
	now := time.Now().UTC()

	if err := insertEntries(ctx, tx, command, transactionID, domain.Credit, command.Credits, now); err != nil {
		return "", err
	}
	if err := insertEntries(ctx, tx, command, transactionID, domain.Debit, command.Debits, now); err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return transactionID, nil
}

func validateBalanced(command domain.JournalEntryCommand) error {
	creditsSum := decimal.Zero
	for _, entry := range command.Credits {
		creditsSum = creditsSum.Add(entry.Amount)
	}
	debitsSum := decimal.Zero
	for _, entry := range command.Debits {
		debitsSum = debitsSum.Add(entry.Amount)
	}
	if !creditsSum.Equal(debitsSum) {
		return fmt.Errorf("%w: credits sum %s does not equal debits sum %s",
			apperrors.ErrValidation, creditsSum.String(), debitsSum.String())
	}
	return nil
}

func insertEntries(ctx context.Context, tx pgx.Tx, command domain.JournalEntryCommand, transactionID string, side domain.EntrySide, entries []domain.SingleDebitOrCreditEntry, now time.Time) error {
	query := `
		INSERT INTO acc_gl_journal_entry (
			entry_id, transaction_id, gl_account_id, office_id, currency_code,
			side, amount, entry_date, reference_number, comments,
			payment_type_id, account_number, check_number, receipt_number,
			bank_number, routing_code, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	for _, entry := range entries {
		comments := entry.Comments
		if comments == "" {
			comments = command.Comments
		}
		_, err := tx.Exec(ctx, query,
			uuid.NewString(),
			transactionID,
			entry.GLAccountID,
			command.OfficeID,
			command.CurrencyCode,
			string(side),
			entry.Amount,
			command.TransactionDate,
			command.ReferenceNumber,
			comments,
			command.PaymentDetails.PaymentTypeID,
			command.PaymentDetails.AccountNumber,
			command.PaymentDetails.CheckNumber,
			command.PaymentDetails.ReceiptNumber,
			command.PaymentDetails.BankNumber,
			command.PaymentDetails.RoutingCode,
			now,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert journal entry", err)
		}
	}
	return nil
}

// FindJournalEntriesByTransactionID retrieves all postings of one transaction.
func (r *PgxJournalEntryRepository) FindJournalEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, transaction_id, gl_account_id, office_id, currency_code,
		       side, amount, entry_date, reference_number, comments, created_at
		FROM acc_gl_journal_entry
		WHERE transaction_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.GLAccountID,
			&m.OfficeID,
			&m.CurrencyCode,
			&m.Side,
			&m.Amount,
			&m.EntryDate,
			&m.ReferenceNumber,
			&m.Comments,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading journal entries", err)
	}

	return mapping.ToDomainJournalEntries(entries), nil
}
