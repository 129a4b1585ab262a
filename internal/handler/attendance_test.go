package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam(t *testing.T) {
	got, err := parseDateParam("", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDateParam("2025-03-10", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *got)

	// endOfDay 时纯日期扩展到当天最后一刻，使范围成为闭区间
	got, err = parseDateParam("2025-03-10", true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.After(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)))
	assert.True(t, got.Before(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))

	got, err = parseDateParam("2025-03-10T08:30:00Z", true)
	require.NoError(t, err)
	require.NotNil(t, got)
	// RFC3339 带时间的值不做扩展
	assert.Equal(t, time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC), *got)

	_, err = parseDateParam("10/03/2025", false)
	assert.Error(t, err)
}
