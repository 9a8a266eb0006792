package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a persisted entry row is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalEntry represents a row of the acc_gl_journal_entry table.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`       // Primary Key (UUID)
	TransactionID   string          `db:"transaction_id"` // Groups the rows of one command
	GLAccountID     int64           `db:"gl_account_id"`
	OfficeID        int64           `db:"office_id"`
	CurrencyCode    string          `db:"currency_code"`
	Side            EntrySide       `db:"side"`
	Amount          decimal.Decimal `db:"amount"`
	EntryDate       time.Time       `db:"entry_date"`
	ReferenceNumber string          `db:"reference_number"`
	Comments        string          `db:"comments"`
	PaymentTypeID   *int64          `db:"payment_type_id"`
	AccountNumber   string          `db:"account_number"`
	CheckNumber     string          `db:"check_number"`
	ReceiptNumber   string          `db:"receipt_number"`
	BankNumber      string          `db:"bank_number"`
	RoutingCode     string          `db:"routing_code"`
	CreatedAt       time.Time       `db:"created_at"`
}
