package domain

import "time"

type Template struct {
	ID        int64     `json:"id"`
	Scope     string    `json:"scope"`  // global | provider
	RefID     *int64    `json:"ref_id"` // provider reference for scope=provider
	Type      string    `json:"type"`   // translate_batch | generate_component
	Role      string    `json:"role"`   // system | user
	Body      string    `json:"body"`
	IsDefault bool      `json:"is_default"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
