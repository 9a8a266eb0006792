package models

// GLAccountType defines the fundamental accounting classification of a GL account.
type GLAccountType string

// GLAccount represents a row of the acc_gl_account table.
type GLAccount struct {
	GLAccountID          int64         `db:"gl_account_id"`
	Name                 string        `db:"name"`
	GLCode               string        `db:"gl_code"`
	AccountType          GLAccountType `db:"account_type"`
	ManualEntriesAllowed bool          `db:"manual_entries_allowed"`
	Disabled             bool          `db:"disabled"`
}

// ProductToGLAccountMapping represents a row of the acc_product_mapping table.
type ProductToGLAccountMapping struct {
	MappingID            int64  `db:"mapping_id"`
	ProductID            int64  `db:"product_id"`
	PaymentTypeID        *int64 `db:"payment_type_id"` // NULL for the product-level default mapping
	FinancialAccountType int    `db:"financial_account_type"`
	GLAccountID          int64  `db:"gl_account_id"`
}
