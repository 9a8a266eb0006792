package mapping

import (
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	"github.com/avinashn/gl_journal_app/internal/models"
)

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		TransactionID:   m.TransactionID,
		GLAccountID:     m.GLAccountID,
		OfficeID:        m.OfficeID,
		CurrencyCode:    m.CurrencyCode,
		Side:            domain.EntrySide(m.Side),
		Amount:          m.Amount,
		EntryDate:       m.EntryDate,
		ReferenceNumber: m.ReferenceNumber,
		Comments:        m.Comments,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainJournalEntries converts a slice of model JournalEntry rows
func ToDomainJournalEntries(ms []models.JournalEntry) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainJournalEntry(m)
	}
	return entries
}
