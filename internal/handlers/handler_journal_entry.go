package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	portssvc "github.com/avinashn/gl_journal_app/internal/core/ports/services"
	"github.com/avinashn/gl_journal_app/internal/dto"
	"github.com/avinashn/gl_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests related to journal entries.
type journalEntryHandler struct {
	journalEntrySvc portssvc.JournalEntrySvcFacade
}

// newJournalEntryHandler creates a new journalEntryHandler.
func newJournalEntryHandler(journalEntrySvc portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{
		journalEntrySvc: journalEntrySvc,
	}
}

// createJournalEntry accepts a raw journal entry payload, runs the
// normalization pipeline and executes the resolved command. The body is read
// raw rather than bound to a struct: the parameter whitelist and the
// conditional entry arrays are validated by the parsing pipeline itself.
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := c.GetRawData()
	if err != nil {
		logger.Error("Failed to read request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	transactionID, err := h.journalEntrySvc.CreateJournalEntry(c.Request.Context(), body)
	if err != nil {
		respondJournalEntryError(c, err)
		return
	}

	logger.Info("Journal entry created", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.CreateJournalEntryResponse{TransactionID: transactionID})
}

// getJournalEntries retrieves the persisted postings of one transaction.
func (h *journalEntryHandler) getJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	entries, err := h.journalEntrySvc.GetJournalEntries(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entries not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entries not found"})
			return
		}
		logger.Error("Failed to get journal entries", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
}

// respondJournalEntryError maps the parsing/execution error taxonomy onto
// HTTP statuses. No partial command ever reaches the response.
func respondJournalEntryError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrEmptyPayload),
		errors.Is(err, apperrors.ErrUnsupportedParameter),
		errors.Is(err, apperrors.ErrMalformedRequest),
		errors.Is(err, apperrors.ErrMalformedLineItem),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAccountNotConfigured):
		logger.Warn("Journal entry references unconfigured product", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to create journal entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
	}
}
