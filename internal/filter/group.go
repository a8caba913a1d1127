package filter

import (
	"time"

	"go-gin-event-discovery/internal/model"
)

const Uncategorized = "uncategorized"

// GroupByCategory 依 categoryId 分組，組內依日期排序；loc 用來解讀沒有時區的日期
func GroupByCategory(events []model.Event, loc *time.Location) map[string][]model.Event {
	groups := make(map[string][]model.Event)
	for _, e := range events {
		key := e.CategoryID
		if key == "" {
			key = Uncategorized
		}
		groups[key] = append(groups[key], e)
	}
	for _, list := range groups {
		rows := make([]row, len(list))
		for i, e := range list {
			instant, ok := e.InstantIn(loc)
			rows[i] = row{event: e, instant: instant, dated: ok}
		}
		sortRows(rows, model.SortKeyNone)
		for i, r := range rows {
			list[i] = r.event
		}
	}
	return groups
}
