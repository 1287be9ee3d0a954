package domain

// Account represents one account of the chart of accounts.
// The chart is maintained by an external manager; this service only reads it.
// Entries may only post to analytic (leaf) accounts; synthetic accounts exist
// for reporting rollups.
type Account struct {
	AccountID       string `json:"accountID"`
	Code            string `json:"code"` // Unique, human readable, used for display and sorting
	Name            string `json:"name"`
	IsAnalytic      bool   `json:"isAnalytic"`
	IsActive        bool   `json:"isActive"`
	ParentAccountID string `json:"parentAccountID,omitempty"` // Synthetic parent, empty for roots
	Description     string `json:"description,omitempty"`
	AuditFields
}

// IsPostable reports whether new entries may reference this account.
// Historical entries referencing accounts that were deactivated later remain valid.
func (a Account) IsPostable() bool {
	return a.IsAnalytic && a.IsActive
}
