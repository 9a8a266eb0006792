package services

import (
	"context"

	"github.com/avinashn/gl_journal_app/internal/core/domain"
)

// JournalEntryParserSvc defines the request-to-command normalization pipeline.
type JournalEntryParserSvc interface {
	// ParseJournalEntryCommand parses a raw JSON request body into a fully
	// resolved journal entry command. It either returns a complete command or
	// an error; there is no partial-success mode.
	ParseJournalEntryCommand(ctx context.Context, body []byte) (*domain.JournalEntryCommand, error)
}

// JournalEntryWriterSvc defines write operations for journal entries.
type JournalEntryWriterSvc interface {
	// CreateJournalEntry parses the raw request body and hands the resolved
	// command to the downstream executor. Returns the transaction identifier
	// shared by the persisted postings.
	CreateJournalEntry(ctx context.Context, body []byte) (string, error)
}

// JournalEntryReaderSvc defines read operations for journal entries.
type JournalEntryReaderSvc interface {
	// GetJournalEntries retrieves the persisted postings of one transaction.
	GetJournalEntries(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryParserSvc
	JournalEntryWriterSvc
	JournalEntryReaderSvc
}

// GLAccountSvcFacade defines read operations for GL accounts.
type GLAccountSvcFacade interface {
	// GetGLAccountByID retrieves a GL account by its identifier.
	GetGLAccountByID(ctx context.Context, glAccountID int64) (*domain.GLAccount, error)
}
