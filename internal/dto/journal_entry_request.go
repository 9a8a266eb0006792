package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
)

// supportedJournalEntryParams is the recognized top-level parameter set for a
// journal entry request. Any other key rejects the whole request before any
// extraction happens.
var supportedJournalEntryParams = map[string]struct{}{
	"officeId":         {},
	"currencyCode":     {},
	"comments":         {},
	"transactionDate":  {},
	"referenceNumber":  {},
	"accountingRuleId": {},
	"locale":           {},
	"amount":           {},
	"paymentTypeId":    {},
	"accountNumber":    {},
	"checkNumber":      {},
	"receiptNumber":    {},
	"bankNumber":       {},
	"routingCode":      {},
	"credits":          {},
	"debits":           {},
	"savingsCredits":   {},
	"savingsDebits":    {},
}

// JournalEntryRequest is the typed view of an inbound journal entry payload.
// Optional fields are pointers; the four entry arrays stay raw because their
// presence and array-ness drive the merge policy downstream.
type JournalEntryRequest struct {
	OfficeID         *int64          `json:"officeId"`
	CurrencyCode     *string         `json:"currencyCode"`
	Comments         *string         `json:"comments"`
	TransactionDate  *string         `json:"transactionDate"`
	ReferenceNumber  *string         `json:"referenceNumber"`
	AccountingRuleID *int64          `json:"accountingRuleId"`
	Locale           *string         `json:"locale"`
	Amount           json.RawMessage `json:"amount"`
	PaymentTypeID    *int64          `json:"paymentTypeId"`
	AccountNumber    *string         `json:"accountNumber"`
	CheckNumber      *string         `json:"checkNumber"`
	ReceiptNumber    *string         `json:"receiptNumber"`
	BankNumber       *string         `json:"bankNumber"`
	RoutingCode      *string         `json:"routingCode"`
	Credits          json.RawMessage `json:"credits"`
	Debits           json.RawMessage `json:"debits"`
	SavingsCredits   json.RawMessage `json:"savingsCredits"`
	SavingsDebits    json.RawMessage `json:"savingsDebits"`
}

// DebitCreditEntryRequest is one raw element of a credits/debits array. An
// element carries either an explicit glAccountId or a complete savings
// reference (savingsAccountId + savingsProductId). Amount stays raw so it can
// be parsed against the request locale.
type DebitCreditEntryRequest struct {
	GLAccountID      *int64          `json:"glAccountId"`
	SavingsAccountID *int64          `json:"savingsAccountId"`
	SavingsProductID *int64          `json:"savingsProductId"`
	Amount           json.RawMessage `json:"amount"`
	Comments         *string         `json:"comments"`
}

// HasSavingsReference reports whether the element references a savings account
// instead of stating its GL account directly.
func (e *DebitCreditEntryRequest) HasSavingsReference() bool {
	return e.SavingsAccountID != nil
}

// ParseJournalEntryRequest validates the raw key set against the supported
// parameters and decodes the payload into its typed form. A blank body yields
// apperrors.ErrEmptyPayload, an unrecognized key apperrors.ErrUnsupportedParameter.
func ParseJournalEntryRequest(body []byte) (*JournalEntryRequest, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.ErrEmptyPayload
	}

	var rawKeys map[string]json.RawMessage
	if err := json.Unmarshal(body, &rawKeys); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", apperrors.ErrMalformedRequest, err)
	}

	for key := range rawKeys {
		if _, ok := supportedJournalEntryParams[key]; !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedParameter, key)
		}
	}

	req := &JournalEntryRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}
	return req, nil
}

// DebitCreditEntries decodes one of the four raw entry arrays. An absent key,
// or a value that is not a JSON array, contributes an empty (non-nil) slice;
// only structurally invalid array content is an error.
func DebitCreditEntries(raw json.RawMessage) ([]DebitCreditEntryRequest, error) {
	if !isJSONArray(raw) {
		return []DebitCreditEntryRequest{}, nil
	}
	entries := []DebitCreditEntryRequest{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}
	return entries, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}
