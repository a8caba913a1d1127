package filter

import (
	"slices"
	"strings"
	"time"

	"go-gin-event-discovery/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply 依文字、分類、日期條件篩選後排序。純函式，不修改輸入
func Apply(events []model.Event, categories []model.Category, criteria model.FilterCriteria, now time.Time) []model.Event {
	aliases := AliasSet(criteria.CategoryID, categories)
	search := strings.ToLower(criteria.SearchText)

	rows := make([]row, 0, len(events))
	for _, e := range events {
		if !matchesText(e, search) || !matchesCategory(e, aliases) || !matchesPeriod(e, criteria, now) {
			continue
		}
		instant, ok := e.InstantIn(now.Location())
		rows = append(rows, row{event: e, title: strings.ToLower(e.Title), instant: instant, dated: ok})
	}

	sortRows(rows, criteria.SortKey)

	result := make([]model.Event, len(rows))
	for i, r := range rows {
		result[i] = r.event
	}
	return result
}

// Matches 單一活動是否符合所有條件
func Matches(e model.Event, categories []model.Category, criteria model.FilterCriteria, now time.Time) bool {
	return matchesText(e, strings.ToLower(criteria.SearchText)) &&
		matchesCategory(e, AliasSet(criteria.CategoryID, categories)) &&
		matchesPeriod(e, criteria, now)
}

// AliasSet 選定分類可接受的 categoryId：選取值本身，加上對應分類的 _id 與 key。
// "all" 或空字串回傳 nil，代表不篩分類
func AliasSet(categoryID string, categories []model.Category) map[string]struct{} {
	if categoryID == "" || categoryID == model.CategoryAll {
		return nil
	}
	aliases := map[string]struct{}{categoryID: {}}
	for _, c := range categories {
		if c.ID != categoryID && c.Key != categoryID {
			continue
		}
		if c.ID != "" {
			aliases[c.ID] = struct{}{}
		}
		if c.Key != "" {
			aliases[c.Key] = struct{}{}
		}
		break
	}
	return aliases
}

func matchesText(e model.Event, lowerSearch string) bool {
	if lowerSearch == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), lowerSearch)
}

func matchesCategory(e model.Event, aliases map[string]struct{}) bool {
	if aliases == nil {
		return true
	}
	if e.CategoryID == "" {
		return false
	}
	_, ok := aliases[e.CategoryID]
	return ok
}

type row struct {
	event   model.Event
	title   string
	instant time.Time
	dated   bool
}

// sortRows 穩定排序；名稱排序忽略日期，其餘一律依日期遞增，無法解析的日期排最後
func sortRows(rows []row, key model.SortKey) {
	switch key {
	case model.SortKeyNameAsc, model.SortKeyNameDesc:
		// Collator 不是 concurrency-safe，每次呼叫各自建立
		col := collate.New(language.Und)
		desc := key == model.SortKeyNameDesc
		slices.SortStableFunc(rows, func(a, b row) int {
			c := col.CompareString(a.title, b.title)
			if desc {
				return -c
			}
			return c
		})
	default:
		slices.SortStableFunc(rows, func(a, b row) int {
			switch {
			case !a.dated && !b.dated:
				return 0
			case !a.dated:
				return 1
			case !b.dated:
				return -1
			}
			return a.instant.Compare(b.instant)
		})
	}
}
