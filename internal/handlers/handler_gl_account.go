package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	portssvc "github.com/avinashn/gl_journal_app/internal/core/ports/services"
	"github.com/avinashn/gl_journal_app/internal/dto"
	"github.com/avinashn/gl_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// glAccountHandler handles HTTP requests related to GL accounts.
type glAccountHandler struct {
	glAccountSvc portssvc.GLAccountSvcFacade
}

// newGLAccountHandler creates a new glAccountHandler.
func newGLAccountHandler(glAccountSvc portssvc.GLAccountSvcFacade) *glAccountHandler {
	return &glAccountHandler{
		glAccountSvc: glAccountSvc,
	}
}

// getGLAccount retrieves one GL account by its identifier.
func (h *glAccountHandler) getGLAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	glAccountID, err := strconv.ParseInt(c.Param("glAccountID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid GL account ID"})
		return
	}

	account, err := h.glAccountSvc.GetGLAccountByID(c.Request.Context(), glAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("GL account not found", slog.Int64("gl_account_id", glAccountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "GL account not found"})
			return
		}
		logger.Error("Failed to get GL account", slog.String("error", err.Error()), slog.Int64("gl_account_id", glAccountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve GL account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGLAccountResponse(account))
}
