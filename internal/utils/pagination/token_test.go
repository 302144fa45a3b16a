package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/openbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	entryDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 14, 9, 30, 15, 123456789, time.UTC)

	token := pagination.EncodeToken(entryDate, createdAt)
	gotEntryDate, gotCreatedAt, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, gotEntryDate.Equal(entryDate))
	assert.True(t, gotCreatedAt.Equal(createdAt))
}

func TestDecodeToken_NotBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2026-03-14T00:00:00Z"))

	_, _, err := pagination.DecodeToken(token)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|2026-03-14T09:30:15Z"))

	_, _, err := pagination.DecodeToken(token)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")
}
