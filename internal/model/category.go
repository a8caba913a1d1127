package model

// Category 活動分類；事件的 categoryId 可能存 _id 也可能存 key
type Category struct {
	ID    string `json:"_id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
	Icon  string `json:"icon,omitempty"`
}
