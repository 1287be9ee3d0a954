package models

// Account mirrors the accounts table (the seeded chart of accounts).
type Account struct {
	AccountID       string `db:"account_id"`
	Code            string `db:"code"`
	Name            string `db:"name"`
	IsAnalytic      bool   `db:"is_analytic"`
	IsActive        bool   `db:"is_active"`
	ParentAccountID string `db:"parent_account_id"` // Nullable
	Description     string `db:"description"`
	AuditFields
}
