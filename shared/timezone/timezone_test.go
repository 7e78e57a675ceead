package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"cruisedesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUse(t *testing.T) {
	require.NoError(t, timezone.Use("Asia/Jakarta"))
	t.Cleanup(func() { _ = timezone.Use("UTC") })

	assert.Equal(t, "Asia/Jakarta", timezone.Location().String())
	assert.Equal(t, "Asia/Jakarta", timezone.Now().Location().String())

	departure := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-02 00:00", timezone.Format(departure, "2006-01-02 15:04"))

	parsed, err := timezone.Parse("2006-01-02 15:04", "2025-03-02 00:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(departure))
}

func TestUse_UnknownZoneKeepsCurrent(t *testing.T) {
	require.NoError(t, timezone.Use("UTC"))

	assert.Error(t, timezone.Use("Mars/Olympus"))
	assert.Equal(t, "UTC", timezone.Location().String())
}
