package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionCodeRoundTrip(t *testing.T) {
	assert.Equal(t, int32(1), DirectionIn.Code())
	assert.Equal(t, int32(2), DirectionOut.Code())

	direction, ok := DirectionFromCode(1)
	assert.True(t, ok)
	assert.Equal(t, DirectionIn, direction)

	direction, ok = DirectionFromCode(2)
	assert.True(t, ok)
	assert.Equal(t, DirectionOut, direction)

	_, ok = DirectionFromCode(0)
	assert.False(t, ok)
	_, ok = DirectionFromCode(3)
	assert.False(t, ok)
}

func TestGroupEventsByDate(t *testing.T) {
	events := []*AttendanceEvent{
		{ID: 1, Timestamp: time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC), Direction: DirectionIn},
		{ID: 2, Timestamp: time.Date(2025, 3, 10, 17, 45, 0, 0, time.UTC), Direction: DirectionOut},
		{ID: 3, Timestamp: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), Direction: DirectionIn},
	}

	grouped := GroupEventsByDate(events)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["2025-03-10"], 2)
	require.Len(t, grouped["2025-03-12"], 1)

	// 组内保持输入顺序
	assert.Equal(t, int64(1), grouped["2025-03-10"][0].ID)
	assert.Equal(t, int64(2), grouped["2025-03-10"][1].ID)

	// 没有打卡的日期不能出现在结果里
	_, ok := grouped["2025-03-11"]
	assert.False(t, ok)
}

func TestGroupEventsByDateUsesUTC(t *testing.T) {
	cst := time.FixedZone("CST", 8*60*60)

	// 本地时间 3 月 11 日凌晨，UTC 仍是 3 月 10 日
	events := []*AttendanceEvent{
		{ID: 1, Timestamp: time.Date(2025, 3, 11, 2, 0, 0, 0, cst), Direction: DirectionIn},
	}

	grouped := GroupEventsByDate(events)

	require.Len(t, grouped, 1)
	assert.Contains(t, grouped, "2025-03-10")
}

func TestGroupEventsByDateEmpty(t *testing.T) {
	grouped := GroupEventsByDate(nil)
	assert.Empty(t, grouped)
	assert.NotNil(t, grouped)
}
