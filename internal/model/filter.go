package model

import "time"

const CategoryAll = "all"

type DatePeriod string

const (
	DatePeriodNone     DatePeriod = "none"
	DatePeriodWeek     DatePeriod = "week"
	DatePeriodWeekend  DatePeriod = "weekend"
	DatePeriodNextWeek DatePeriod = "next_week"
	DatePeriodMonth    DatePeriod = "month"
	DatePeriodYear     DatePeriod = "year"
	DatePeriodCustom   DatePeriod = "custom"
)

func (p DatePeriod) IsValid() bool {
	switch p {
	case DatePeriodNone, DatePeriodWeek, DatePeriodWeekend, DatePeriodNextWeek,
		DatePeriodMonth, DatePeriodYear, DatePeriodCustom:
		return true
	}
	return false
}

type SortKey string

const (
	SortKeyNone     SortKey = "none"
	SortKeyNameAsc  SortKey = "name_asc"
	SortKeyNameDesc SortKey = "name_desc"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortKeyNone, SortKeyNameAsc, SortKeyNameDesc:
		return true
	}
	return false
}

// DateRange 自訂區間，Start / End 皆為 nil 以外才生效
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// FilterCriteria 由 UI 持有的篩選條件，每次 render 傳入
type FilterCriteria struct {
	SearchText  string     `json:"search_text"`
	CategoryID  string     `json:"category_id"`
	DatePeriod  DatePeriod `json:"date_period"`
	CustomRange *DateRange `json:"custom_range,omitempty"`
	SortKey     SortKey    `json:"sort_key"`
}

// DefaultFilterCriteria 不做任何篩選，依日期排序
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		CategoryID: CategoryAll,
		DatePeriod: DatePeriodNone,
		SortKey:    SortKeyNone,
	}
}
