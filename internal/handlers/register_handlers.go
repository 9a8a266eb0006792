package handlers

import (
	"github.com/avinashn/gl_journal_app/internal/core/services"
	"github.com/avinashn/gl_journal_app/internal/repositories/database/pgsql"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, services and handlers onto the given
// router group.
func RegisterRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	group.GET("/health", getHome)
	registerJournalEntryRoutes(group, dbPool)
	registerGLAccountRoutes(group, dbPool)
}

// registerJournalEntryRoutes registers journal entry specific routes
func registerJournalEntryRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	mappingRepo := pgsql.NewPgxProductMappingRepository(dbPool)
	journalEntryRepo := pgsql.NewPgxJournalEntryRepository(dbPool)
	resolver := services.NewLedgerAccountResolver(mappingRepo)
	journalEntrySvc := services.NewJournalEntryService(resolver, journalEntryRepo)

	journalEntryHandler := newJournalEntryHandler(journalEntrySvc)

	journalEntries := group.Group("/journalentries")
	{
		journalEntries.POST("/", journalEntryHandler.createJournalEntry)
		journalEntries.GET("/:transactionID", journalEntryHandler.getJournalEntries)
	}
}

// registerGLAccountRoutes registers GL account specific routes
func registerGLAccountRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	glAccountRepo := pgsql.NewPgxGLAccountRepository(dbPool)
	glAccountSvc := services.NewGLAccountService(glAccountRepo)
	glAccountHandler := newGLAccountHandler(glAccountSvc)

	glAccounts := group.Group("/glaccounts")
	glAccounts.GET("/:glAccountID", glAccountHandler.getGLAccount)
}
