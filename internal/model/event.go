package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// OrganizerInfo 主辦方資訊（後端 populate 時才會有）
type OrganizerInfo struct {
	Name   string   `json:"name"`
	Bio    string   `json:"bio,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
	Image  string   `json:"image,omitempty"`
}

// Event 後端回傳的活動快照，client 端只讀
type Event struct {
	ID               string         `json:"_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	ShortDescription string         `json:"shortDescription,omitempty"`
	Image            string         `json:"image,omitempty"`
	Date             string         `json:"date"`
	Time             string         `json:"time,omitempty"`
	Duration         string         `json:"duration,omitempty"`
	Location         *Location      `json:"location,omitempty"`
	PlaceName        string         `json:"placeName,omitempty"`
	Address          string         `json:"address,omitempty"`
	CategoryID       string         `json:"categoryId,omitempty"`
	Rating           *float64       `json:"rating,omitempty"`
	OrganizerID      string         `json:"organizerId,omitempty"`
	OrganizerName    string         `json:"organizerName,omitempty"`
	OrganizerInfo    *OrganizerInfo `json:"organizerInfo,omitempty"`
}

// UnmarshalJSON 同時接受 _id / id 以及 description / desc 兩種欄位命名；
// 未 populate 時後端只給 id 字串
func (e *Event) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*e = Event{ID: id}
		return nil
	}

	type plain Event
	aux := struct {
		*plain
		AltID   string `json:"id"`
		AltDesc string `json:"desc"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = aux.AltID
	}
	if e.Description == "" {
		e.Description = aux.AltDesc
	}
	return nil
}

var zonedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
}

const (
	localDateTimeLayout = "2006-01-02T15:04:05"
	localMinuteLayout   = "2006-01-02T15:04"
)

// InstantIn 解析 Date；無法解析時 ok 為 false，呼叫端應視為「非即將到來」。
// 沒有時區的日期時間以 loc 解讀；純日期 YYYY-MM-DD 一律是 UTC 午夜
func (e Event) InstantIn(loc *time.Location) (t time.Time, ok bool) {
	raw := strings.TrimSpace(e.Date)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	for _, layout := range []string{localDateTimeLayout, localMinuteLayout} {
		if parsed, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return parsed, true
		}
	}
	if parsed, err := time.Parse(time.DateOnly, raw); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// StartsAt 活動開始時間：Date 當天（loc 的日曆）加上 Time 欄位的 HH:MM；
// Time 缺少或無法解析的部分當成 0
func (e Event) StartsAt(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	instant, ok := e.InstantIn(loc)
	if !ok {
		return time.Time{}, false
	}
	local := instant.In(loc)

	hour, minute := 0, 0
	if parts := strings.SplitN(strings.TrimSpace(e.Time), ":", 3); len(parts) >= 2 {
		hour, _ = strconv.Atoi(parts[0])
		minute, _ = strconv.Atoi(parts[1])
	} else if len(parts) == 1 {
		hour, _ = strconv.Atoi(parts[0])
	}
	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc), true
}

// Coordinates 回傳活動座標；地點為文字或缺少座標時 ok 為 false
func (e Event) Coordinates() (GeoPoint, bool) {
	if e.Location == nil || e.Location.Point == nil {
		return GeoPoint{}, false
	}
	return *e.Location.Point, true
}
