package model

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON user 可能是 id 字串，也可能是 populate 過的物件
func (e *Engagement) UnmarshalJSON(data []byte) error {
	type plain Engagement
	aux := struct {
		*plain
		User json.RawMessage `json:"user"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.UserID = ""
	if len(aux.User) == 0 || string(aux.User) == "null" {
		return nil
	}
	if err := json.Unmarshal(aux.User, &e.UserID); err == nil {
		return nil
	}
	var ref struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(aux.User, &ref); err != nil {
		return fmt.Errorf("unmarshal engagement user: %w", err)
	}
	e.UserID = ref.ID
	return nil
}
