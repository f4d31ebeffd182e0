package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library_landing/internal/domain"
)

func TestNewStatsMessage(t *testing.T) {
	acquired := time.Date(2026, 5, 4, 10, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	snap := &domain.Snapshot{
		Stats:      domain.FallbackStats(),
		Origin:     domain.OriginFallback,
		AcquiredAt: acquired,
	}

	msg := NewStatsMessage(snap)

	assert.Equal(t, domain.OriginFallback, msg.Origin)
	assert.Equal(t, int64(1161), msg.BooksAvailable)
	assert.Equal(t, time.UTC, msg.AcquiredAt.Location())
	assert.True(t, acquired.Equal(msg.AcquiredAt))

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "fallback", raw["origin"])
	assert.EqualValues(t, 1250, raw["total_books"])
	assert.EqualValues(t, 340, raw["total_students"])
	assert.EqualValues(t, 89, raw["books_issued"])
}
