package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	portsrepo "github.com/avinashn/gl_journal_app/internal/core/ports/repositories"
	portssvc "github.com/avinashn/gl_journal_app/internal/core/ports/services"
	"github.com/avinashn/gl_journal_app/internal/dto"
	"github.com/avinashn/gl_journal_app/internal/middleware"
	"github.com/avinashn/gl_journal_app/internal/utils"
)

// journalEntryService normalizes raw journal entry payloads into fully
// resolved commands and hands them to the downstream executor.
type journalEntryService struct {
	resolver         portssvc.LedgerAccountResolverFacade
	journalEntryRepo portsrepo.JournalEntryRepositoryFacade
}

// NewJournalEntryService creates a new JournalEntryService.
func NewJournalEntryService(resolver portssvc.LedgerAccountResolverFacade, journalEntryRepo portsrepo.JournalEntryRepositoryFacade) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		resolver:         resolver,
		journalEntryRepo: journalEntryRepo,
	}
}

// Ensure journalEntryService implements the portssvc.JournalEntrySvcFacade interface
var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

// journalEntryHeader holds the validated top-level fields of a request.
type journalEntryHeader struct {
	officeID         int64
	currencyCode     string
	transactionDate  time.Time
	comments         string
	referenceNumber  string
	accountingRuleID int64
	locale           string
	amount           *decimal.Decimal
	payment          domain.PaymentDetails
}

// ParseJournalEntryCommand runs the full normalization pipeline: typed parse
// and parameter whitelist, header extraction, per-array entry extraction with
// ledger account resolution, the per-side merge, and final assembly. It either
// returns a complete command or an error; never a partial command.
// Implements portssvc.JournalEntryParserSvc
func (s *journalEntryService) ParseJournalEntryCommand(ctx context.Context, body []byte) (*domain.JournalEntryCommand, error) {
	req, err := dto.ParseJournalEntryRequest(body)
	if err != nil {
		return nil, err
	}

	header, err := extractHeader(req)
	if err != nil {
		return nil, err
	}

	// One memo per request: identical (productId, paymentTypeId) references
	// across line items hit the resolver only once.
	memo := newResolutionMemo(s.resolver)

	credits, err := s.extractSide(ctx, req.Credits, req.SavingsCredits, domain.Credit, header, memo)
	if err != nil {
		return nil, err
	}
	debits, err := s.extractSide(ctx, req.Debits, req.SavingsDebits, domain.Debit, header, memo)
	if err != nil {
		return nil, err
	}

	return assembleCommand(header, credits, debits), nil
}

// extractSide extracts the direct entries of one side, then the savings-linked
// entries, and merges the two. The savings-linked extraction must run after
// the direct one: the merge policy branches on whether the direct sequence was
// already empty.
func (s *journalEntryService) extractSide(ctx context.Context, directRaw, savingsRaw []byte, side domain.EntrySide, header journalEntryHeader, memo *resolutionMemo) ([]domain.SingleDebitOrCreditEntry, error) {
	directElements, err := dto.DebitCreditEntries(directRaw)
	if err != nil {
		return nil, err
	}
	direct, err := s.extractEntries(ctx, directElements, side, header, memo)
	if err != nil {
		return nil, err
	}

	savingsElements, err := dto.DebitCreditEntries(savingsRaw)
	if err != nil {
		return nil, err
	}
	savingsLinked, err := s.extractEntries(ctx, savingsElements, side, header, memo)
	if err != nil {
		return nil, err
	}

	return mergeEntries(direct, savingsLinked), nil
}

// extractEntries converts raw array elements into resolved entries, preserving
// order and length. Zero-amount entries are emitted as-is; rejecting them is a
// later business validation, not a parsing concern.
func (s *journalEntryService) extractEntries(ctx context.Context, elements []dto.DebitCreditEntryRequest, side domain.EntrySide, header journalEntryHeader, memo *resolutionMemo) ([]domain.SingleDebitOrCreditEntry, error) {
	entries := make([]domain.SingleDebitOrCreditEntry, 0, len(elements))
	for i, element := range elements {
		if len(element.Amount) == 0 {
			return nil, fmt.Errorf("%w: %s entry %d is missing amount", apperrors.ErrMalformedLineItem, strings.ToLower(string(side)), i)
		}
		amount, err := utils.ParseLocalizedAmount(element.Amount, header.locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %s entry %d: %v", apperrors.ErrMalformedLineItem, strings.ToLower(string(side)), i, err)
		}

		var glAccountID int64
		switch {
		case element.HasSavingsReference():
			// A savings reference takes precedence over an explicit glAccountId.
			if element.SavingsProductID == nil {
				return nil, fmt.Errorf("%w: %s entry %d has savingsAccountId without savingsProductId", apperrors.ErrMalformedLineItem, strings.ToLower(string(side)), i)
			}
			linkedAccount, err := memo.resolve(ctx, *element.SavingsProductID, header.payment.PaymentTypeID)
			if err != nil {
				return nil, err
			}
			glAccountID = linkedAccount.GLAccountID
		case element.GLAccountID != nil:
			glAccountID = *element.GLAccountID
		default:
			return nil, fmt.Errorf("%w: %s entry %d has neither glAccountId nor a savings reference", apperrors.ErrMalformedLineItem, strings.ToLower(string(side)), i)
		}

		comments := ""
		if element.Comments != nil {
			comments = *element.Comments
		}
		entries = append(entries, domain.SingleDebitOrCreditEntry{
			GLAccountID: glAccountID,
			Amount:      amount,
			Comments:    comments,
		})
	}
	return entries, nil
}

// mergeEntries applies the fallback-vs-append policy for one side: an empty
// direct sequence is replaced by the savings-linked one, a non-empty direct
// sequence is augmented with the savings-linked entries after it. The
// asymmetry is deliberate and must not collapse into a plain append.
func mergeEntries(direct, savingsLinked []domain.SingleDebitOrCreditEntry) []domain.SingleDebitOrCreditEntry {
	if len(direct) == 0 {
		return savingsLinked
	}
	return append(direct, savingsLinked...)
}

// assembleCommand is pure construction; no resolution or merge logic.
func assembleCommand(header journalEntryHeader, credits, debits []domain.SingleDebitOrCreditEntry) *domain.JournalEntryCommand {
	return &domain.JournalEntryCommand{
		OfficeID:         header.officeID,
		CurrencyCode:     header.currencyCode,
		TransactionDate:  header.transactionDate,
		Comments:         header.comments,
		Credits:          credits,
		Debits:           debits,
		ReferenceNumber:  header.referenceNumber,
		AccountingRuleID: header.accountingRuleID,
		Amount:           header.amount,
		PaymentDetails:   header.payment,
	}
}

// extractHeader validates the required top-level fields and collects the
// optional ones. A missing required field aborts before any entry extraction.
func extractHeader(req *dto.JournalEntryRequest) (journalEntryHeader, error) {
	header := journalEntryHeader{}

	if req.OfficeID == nil {
		return header, fmt.Errorf("%w: officeId is required", apperrors.ErrMalformedRequest)
	}
	if req.CurrencyCode == nil || *req.CurrencyCode == "" {
		return header, fmt.Errorf("%w: currencyCode is required", apperrors.ErrMalformedRequest)
	}
	if req.TransactionDate == nil {
		return header, fmt.Errorf("%w: transactionDate is required", apperrors.ErrMalformedRequest)
	}
	if req.AccountingRuleID == nil {
		return header, fmt.Errorf("%w: accountingRuleId is required", apperrors.ErrMalformedRequest)
	}

	transactionDate, err := utils.ParseTransactionDate(*req.TransactionDate)
	if err != nil {
		return header, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}

	header.officeID = *req.OfficeID
	header.currencyCode = *req.CurrencyCode
	header.transactionDate = transactionDate
	header.accountingRuleID = *req.AccountingRuleID

	if req.Locale != nil {
		header.locale = *req.Locale
	}
	if req.Comments != nil {
		header.comments = *req.Comments
	}
	if req.ReferenceNumber != nil {
		header.referenceNumber = *req.ReferenceNumber
	}
	if rawPresent(req.Amount) {
		amount, err := utils.ParseLocalizedAmount(req.Amount, header.locale)
		if err != nil {
			return header, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
		}
		header.amount = &amount
	}

	header.payment = domain.PaymentDetails{
		PaymentTypeID: req.PaymentTypeID,
		AccountNumber: stringOrEmpty(req.AccountNumber),
		CheckNumber:   stringOrEmpty(req.CheckNumber),
		ReceiptNumber: stringOrEmpty(req.ReceiptNumber),
		BankNumber:    stringOrEmpty(req.BankNumber),
		RoutingCode:   stringOrEmpty(req.RoutingCode),
	}
	return header, nil
}

func rawPresent(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// resolutionKey identifies one (productId, paymentTypeId) resolver lookup.
type resolutionKey struct {
	productID      int64
	paymentTypeID  int64
	hasPaymentType bool
}

// resolutionMemo caches resolver lookups for the duration of one request.
// Purely an optimization; observable behavior matches per-item resolution.
type resolutionMemo struct {
	resolver portssvc.LedgerAccountResolverFacade
	cache    map[resolutionKey]*domain.GLAccount
}

func newResolutionMemo(resolver portssvc.LedgerAccountResolverFacade) *resolutionMemo {
	return &resolutionMemo{
		resolver: resolver,
		cache:    make(map[resolutionKey]*domain.GLAccount),
	}
}

func (m *resolutionMemo) resolve(ctx context.Context, savingsProductID int64, paymentTypeID *int64) (*domain.GLAccount, error) {
	key := resolutionKey{productID: savingsProductID}
	if paymentTypeID != nil {
		key.paymentTypeID = *paymentTypeID
		key.hasPaymentType = true
	}
	if account, ok := m.cache[key]; ok {
		return account, nil
	}
	account, err := m.resolver.ResolveSavingsControlAccount(ctx, savingsProductID, paymentTypeID)
	if err != nil {
		return nil, err
	}
	m.cache[key] = account
	return account, nil
}

// CreateJournalEntry parses the request and hands the resolved command to the
// downstream executor.
// Implements portssvc.JournalEntryWriterSvc
func (s *journalEntryService) CreateJournalEntry(ctx context.Context, body []byte) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	command, err := s.ParseJournalEntryCommand(ctx, body)
	if err != nil {
		return "", err
	}

	transactionID, err := s.journalEntryRepo.SaveJournalEntryCommand(ctx, *command)
	if err != nil {
		logger.Error("Failed to save journal entry command", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to save journal entries: %w", err)
	}

	logger.Info("Journal entry command executed",
		slog.String("transaction_id", transactionID),
		slog.Int("credits", len(command.Credits)),
		slog.Int("debits", len(command.Debits)))
	return transactionID, nil
}

// GetJournalEntries retrieves the persisted postings of one transaction.
// Implements portssvc.JournalEntryReaderSvc
func (s *journalEntryService) GetJournalEntries(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	entries, err := s.journalEntryRepo.FindJournalEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entries for transaction %s: %w", transactionID, err)
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return entries, nil
}
