package repositories

import (
	"context"

	"github.com/avinashn/gl_journal_app/internal/core/domain"
)

// JournalEntryReader defines read operations for persisted journal entries
type JournalEntryReader interface {
	// FindJournalEntriesByTransactionID retrieves all ledger postings that were
	// produced from a single journal entry command.
	FindJournalEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for persisted journal entries
type JournalEntryWriter interface {
	// SaveJournalEntryCommand persists all lines of a resolved command within a
	// database transaction and returns the shared transaction identifier.
	// The credits==debits balance invariant is enforced here, not in the
	// parsing pipeline.
	SaveJournalEntryCommand(ctx context.Context, command domain.JournalEntryCommand) (string, error)
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
