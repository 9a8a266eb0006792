package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a journal entry line is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// SingleDebitOrCreditEntry is one fully resolved line of a journal entry
// command. The sign of the amount is implied by the side it belongs to.
// Immutable once constructed.
type SingleDebitOrCreditEntry struct {
	GLAccountID int64           `json:"glAccountId"` // Resolved ledger account (Not Null)
	Amount      decimal.Decimal `json:"amount"`      // Precise decimal type
	Comments    string          `json:"comments"`    // Nullable
}

// PaymentDetails carries the optional payment metadata of a journal entry request.
type PaymentDetails struct {
	PaymentTypeID *int64 `json:"paymentTypeId"`
	AccountNumber string `json:"accountNumber"`
	CheckNumber   string `json:"checkNumber"`
	ReceiptNumber string `json:"receiptNumber"`
	BankNumber    string `json:"bankNumber"`
	RoutingCode   string `json:"routingCode"`
}

// JournalEntryCommand is the fully resolved, unambiguous posting instruction
// produced from one inbound request. Credits and Debits are never nil; each is
// at minimum an empty slice. Balancing (sum of credits == sum of debits) is a
// downstream concern and is not enforced here.
type JournalEntryCommand struct {
	OfficeID         int64                      `json:"officeId"`
	CurrencyCode     string                     `json:"currencyCode"`
	TransactionDate  time.Time                  `json:"transactionDate"`
	Comments         string                     `json:"comments"`
	Credits          []SingleDebitOrCreditEntry `json:"credits"`
	Debits           []SingleDebitOrCreditEntry `json:"debits"`
	ReferenceNumber  string                     `json:"referenceNumber"`
	AccountingRuleID int64                      `json:"accountingRuleId"`
	Amount           *decimal.Decimal           `json:"amount"` // Used when the rule implies a single-account posting
	PaymentDetails   PaymentDetails             `json:"paymentDetails"`
}

// JournalEntry is one persisted ledger posting row produced by executing a
// JournalEntryCommand. All rows of one command share a TransactionID.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`       // Primary Key (e.g., UUID)
	TransactionID   string          `json:"transactionID"` // Groups the lines of one command
	GLAccountID     int64           `json:"glAccountId"`
	OfficeID        int64           `json:"officeId"`
	CurrencyCode    string          `json:"currencyCode"`
	Side            EntrySide       `json:"side"`
	Amount          decimal.Decimal `json:"amount"`
	EntryDate       time.Time       `json:"entryDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Comments        string          `json:"comments"`
	CreatedAt       time.Time       `json:"createdAt"`
}
