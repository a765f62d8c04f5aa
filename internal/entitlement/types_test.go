package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_String(t *testing.T) {
	d := Date{Year: 2025, Month: time.March, Day: 7}
	assert.Equal(t, "2025-03-07", d.String())
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2025-03-07")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 7}, d)
}

func TestParseDate_Empty(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("07/03/2025")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 7}, DateOf(ts))
}
