package mapping

import (
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	"github.com/avinashn/gl_journal_app/internal/models"
)

// ToDomainGLAccount converts a model GLAccount to a domain GLAccount
func ToDomainGLAccount(m models.GLAccount) domain.GLAccount {
	return domain.GLAccount{
		GLAccountID:          m.GLAccountID,
		Name:                 m.Name,
		GLCode:               m.GLCode,
		AccountType:          domain.GLAccountType(m.AccountType),
		ManualEntriesAllowed: m.ManualEntriesAllowed,
		Disabled:             m.Disabled,
	}
}

// ToDomainProductMapping converts a model ProductToGLAccountMapping to its domain form
func ToDomainProductMapping(m models.ProductToGLAccountMapping) domain.ProductToGLAccountMapping {
	return domain.ProductToGLAccountMapping{
		MappingID:            m.MappingID,
		ProductID:            m.ProductID,
		PaymentTypeID:        m.PaymentTypeID,
		FinancialAccountType: domain.FinancialAccountType(m.FinancialAccountType),
		GLAccountID:          m.GLAccountID,
	}
}
