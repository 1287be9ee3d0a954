package dto

import "github.com/lotearq/ledger_backoffice_app/internal/core/domain"

// AccountResponse defines the data returned for a chart-of-accounts entry.
type AccountResponse struct {
	AccountID       string `json:"accountID"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	IsAnalytic      bool   `json:"isAnalytic"`
	IsActive        bool   `json:"isActive"`
	ParentAccountID string `json:"parentAccountID,omitempty"`
	Description     string `json:"description,omitempty"`
}

// ListAccountsParams holds the query parameters for listing accounts.
type ListAccountsParams struct {
	// AnalyticOnly restricts to leaf (postable) accounts.
	AnalyticOnly bool `form:"analyticOnly"`
	// ActiveOnly excludes deactivated accounts.
	ActiveOnly bool `form:"activeOnly"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		IsAnalytic:      a.IsAnalytic,
		IsActive:        a.IsActive,
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
