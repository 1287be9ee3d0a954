package pagination_test

import (
	"testing"
	"time"

	"github.com/lotearq/ledger_backoffice_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	entryDate := time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 5, 17, 14, 32, 11, 987654321, time.UTC)

	token := pagination.EncodeToken(entryDate, createdAt)
	require.NotEmpty(t, token)

	gotEntryDate, gotCreatedAt, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, gotEntryDate.Equal(entryDate))
	assert.True(t, gotCreatedAt.Equal(createdAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "!!not-base64!!"},
		{name: "missing separator", token: "MjAyNi0wNS0xN1QwMDowMDowMFo="}, // single date, no pipe
		{name: "bad dates", token: "Zm9vfGJhcg=="},                         // "foo|bar"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
