package filter

import (
	"time"

	"go-gin-event-discovery/internal/model"
)

// Window 回傳日期區間 [start, end]（含端點）。none 與 custom 不由此計算，ok 為 false
func Window(period model.DatePeriod, now time.Time) (start, end time.Time, ok bool) {
	today := int(now.Weekday()) // 0 = Sunday, 6 = Saturday

	switch period {
	case model.DatePeriodWeek:
		return now, now.AddDate(0, 0, 7), true

	case model.DatePeriodWeekend:
		// 週日當天 saturday 會算到下週六，區間會是反向的（不會有任何活動符合）
		daysUntilSaturday := (6 - today) % 7
		daysUntilSunday := (7 - today) % 7
		return startOfDay(now.AddDate(0, 0, daysUntilSaturday)),
			endOfDay(now.AddDate(0, 0, daysUntilSunday)), true

	case model.DatePeriodNextWeek:
		daysUntilMonday := (8 - today) % 7
		if daysUntilMonday == 0 {
			daysUntilMonday = 7
		}
		monday := startOfDay(now.AddDate(0, 0, daysUntilMonday))
		return monday, endOfDay(monday.AddDate(0, 0, 6)), true

	case model.DatePeriodMonth:
		// day 0 of (month+2) = 下個月的最後一天，時間保留 now 的時分秒
		end := time.Date(now.Year(), now.Month()+2, 0,
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
		return now, end, true

	case model.DatePeriodYear:
		return now, now.AddDate(1, 0, 0), true
	}

	return time.Time{}, time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_999_999, t.Location())
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// matchesPeriod 有任何日期條件時，活動必須嚴格晚於 now
func matchesPeriod(e model.Event, criteria model.FilterCriteria, now time.Time) bool {
	period := criteria.DatePeriod
	if period == "" || period == model.DatePeriodNone {
		return true
	}

	var start, end time.Time
	if period == model.DatePeriodCustom {
		r := criteria.CustomRange
		if r == nil || r.Start == nil || r.End == nil {
			return true
		}
		start, end = *r.Start, *r.End
	} else {
		var ok bool
		start, end, ok = Window(period, now)
		if !ok {
			return true
		}
	}

	instant, ok := e.InstantIn(now.Location())
	if !ok || !instant.After(now) {
		return false
	}
	return within(instant, start, end)
}
