package domain

import "time"

// Component is a generated UI component together with its key manifest:
// the list of translation keys its source depends on, in first-seen order.
// Keys reference LocalizationRecord rows by key string, not by id.
type Component struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Prompt       string    `json:"prompt"`
	Source       string    `json:"source"`
	Keys         []string  `json:"keys"`
	DemoPropsRaw string    `json:"demo_props_json"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
