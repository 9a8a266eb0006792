package dto

import (
	"time"

	"github.com/avinashn/gl_journal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryResponse returns the identifier shared by the postings of
// a successfully executed journal entry command.
type CreateJournalEntryResponse struct {
	TransactionID string `json:"transactionId"`
}

// JournalEntryResponse defines the data returned for one persisted ledger posting.
type JournalEntryResponse struct {
	EntryID         string          `json:"entryId"`
	TransactionID   string          `json:"transactionId"`
	GLAccountID     int64           `json:"glAccountId"`
	OfficeID        int64           `json:"officeId"`
	CurrencyCode    string          `json:"currencyCode"`
	Side            string          `json:"side"` // DEBIT or CREDIT
	Amount          decimal.Decimal `json:"amount"`
	EntryDate       time.Time       `json:"entryDate"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Comments        string          `json:"comments,omitempty"`
}

// GLAccountResponse defines the data returned for a GL account.
type GLAccountResponse struct {
	GLAccountID          int64  `json:"glAccountId"`
	Name                 string `json:"name"`
	GLCode               string `json:"glCode"`
	AccountType          string `json:"accountType"`
	ManualEntriesAllowed bool   `json:"manualEntriesAllowed"`
	Disabled             bool   `json:"disabled"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:         entry.EntryID,
		TransactionID:   entry.TransactionID,
		GLAccountID:     entry.GLAccountID,
		OfficeID:        entry.OfficeID,
		CurrencyCode:    entry.CurrencyCode,
		Side:            string(entry.Side),
		Amount:          entry.Amount,
		EntryDate:       entry.EntryDate,
		ReferenceNumber: entry.ReferenceNumber,
		Comments:        entry.Comments,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to response DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToJournalEntryResponse(&entry)
	}
	return responses
}

// ToGLAccountResponse converts a domain.GLAccount to its response DTO.
func ToGLAccountResponse(account *domain.GLAccount) GLAccountResponse {
	return GLAccountResponse{
		GLAccountID:          account.GLAccountID,
		Name:                 account.Name,
		GLCode:               account.GLCode,
		AccountType:          string(account.AccountType),
		ManualEntriesAllowed: account.ManualEntriesAllowed,
		Disabled:             account.Disabled,
	}
}
