package domain

// GLAccountType defines the fundamental accounting classification of a GL account.
type GLAccountType string

const (
	Asset     GLAccountType = "ASSET"
	Liability GLAccountType = "LIABILITY"
	Equity    GLAccountType = "EQUITY"
	Income    GLAccountType = "INCOME"
	Expense   GLAccountType = "EXPENSE"
)

// FinancialAccountType identifies the role a mapped GL account plays for a
// savings product. Only the savings control account is relevant to journal
// entry resolution.
type FinancialAccountType int

const (
	SavingsControl FinancialAccountType = 1
)

// GLAccount represents a general-ledger account that amounts are posted against.
type GLAccount struct {
	GLAccountID          int64         `json:"glAccountId"` // Primary Key
	Name                 string        `json:"name"`
	GLCode               string        `json:"glCode"` // Unique ledger code
	AccountType          GLAccountType `json:"accountType"`
	ManualEntriesAllowed bool          `json:"manualEntriesAllowed"`
	Disabled             bool          `json:"disabled"`
}

// ProductToGLAccountMapping links a savings product (and optionally a payment
// type) to the GL account configured as its posting target.
type ProductToGLAccountMapping struct {
	MappingID            int64                `json:"mappingId"`
	ProductID            int64                `json:"productId"`
	PaymentTypeID        *int64               `json:"paymentTypeId"` // Nullable: product-level default mapping
	FinancialAccountType FinancialAccountType `json:"financialAccountType"`
	GLAccountID          int64                `json:"glAccountId"`
}
