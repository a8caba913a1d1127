package filter_test

import (
	"testing"
	"time"

	"go-gin-event-discovery/internal/filter"
	"go-gin-event-discovery/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func endOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 999_999_999, time.UTC)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		period    model.DatePeriod
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"week", model.DatePeriodWeek, day(2024, 6, 12, 10, 0), day(2024, 6, 12, 10, 0), day(2024, 6, 19, 10, 0)},
		{"weekend from wednesday", model.DatePeriodWeekend, day(2024, 6, 12, 10, 0), day(2024, 6, 15, 0, 0), endOf(2024, 6, 16)},
		{"weekend from saturday", model.DatePeriodWeekend, day(2024, 6, 15, 10, 0), day(2024, 6, 15, 0, 0), endOf(2024, 6, 16)},
		{"next week from wednesday", model.DatePeriodNextWeek, day(2024, 6, 12, 10, 0), day(2024, 6, 17, 0, 0), endOf(2024, 6, 23)},
		{"next week from monday", model.DatePeriodNextWeek, day(2024, 6, 10, 10, 0), day(2024, 6, 17, 0, 0), endOf(2024, 6, 23)},
		{"next week from sunday", model.DatePeriodNextWeek, day(2024, 6, 16, 10, 0), day(2024, 6, 17, 0, 0), endOf(2024, 6, 23)},
		{"month", model.DatePeriodMonth, day(2024, 6, 12, 10, 0), day(2024, 6, 12, 10, 0), day(2024, 7, 31, 10, 0)},
		{"month across leap february", model.DatePeriodMonth, day(2024, 1, 31, 8, 30), day(2024, 1, 31, 8, 30), day(2024, 2, 29, 8, 30)},
		{"month across year end", model.DatePeriodMonth, day(2024, 12, 5, 9, 0), day(2024, 12, 5, 9, 0), day(2025, 1, 31, 9, 0)},
		{"year", model.DatePeriodYear, day(2024, 6, 12, 10, 0), day(2024, 6, 12, 10, 0), day(2025, 6, 12, 10, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := filter.Window(tt.period, tt.now)
			require.True(t, ok)
			assert.True(t, tt.wantStart.Equal(start), "start %s", start)
			assert.True(t, tt.wantEnd.Equal(end), "end %s", end)
		})
	}

	t.Run("none and custom have no window", func(t *testing.T) {
		_, _, ok := filter.Window(model.DatePeriodNone, now)
		assert.False(t, ok)
		_, _, ok = filter.Window(model.DatePeriodCustom, now)
		assert.False(t, ok)
	})
}

func TestWeekend_EdgeBoundaries(t *testing.T) {
	weekend := criteria(func(c *model.FilterCriteria) { c.DatePeriod = model.DatePeriodWeekend })
	events := []model.Event{
		ev("friday", "a", day(2024, 6, 14, 20, 0)),
		ev("saturday-midnight", "b", day(2024, 6, 15, 0, 0)),
		ev("sunday-last", "c", endOf(2024, 6, 16)),
		ev("monday", "d", day(2024, 6, 17, 0, 0)),
	}

	got := filter.Apply(events, nil, weekend, now)
	assert.Equal(t, []string{"saturday-midnight", "sunday-last"}, ids(got))
}

// 週日呼叫時 saturday 會落在下週六，sunday 是今天，區間反向，沒有活動符合
func TestWeekend_OnSundayMatchesNothing(t *testing.T) {
	sunday := day(2024, 6, 16, 10, 0)
	start, end, ok := filter.Window(model.DatePeriodWeekend, sunday)
	require.True(t, ok)
	assert.True(t, start.After(end))

	events := []model.Event{
		ev("sunday-evening", "a", day(2024, 6, 16, 18, 0)),
		ev("next-saturday", "b", day(2024, 6, 22, 12, 0)),
	}
	weekend := criteria(func(c *model.FilterCriteria) { c.DatePeriod = model.DatePeriodWeekend })
	assert.Empty(t, filter.Apply(events, nil, weekend, sunday))
}

func TestNextWeek_OnMondaySkipsToday(t *testing.T) {
	monday := day(2024, 6, 10, 8, 0)
	events := []model.Event{
		ev("today", "a", day(2024, 6, 10, 20, 0)),
		ev("next-monday", "b", day(2024, 6, 17, 9, 0)),
	}
	nextWeek := criteria(func(c *model.FilterCriteria) { c.DatePeriod = model.DatePeriodNextWeek })
	assert.Equal(t, []string{"next-monday"}, ids(filter.Apply(events, nil, nextWeek, monday)))
}
