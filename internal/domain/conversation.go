package domain

import "time"

// Conversation is the opaque chat history for one component. The client
// owns its shape and the autosave debounce; the server only upserts it.
type Conversation struct {
	ComponentID string    `json:"component_id"`
	MessagesRaw string    `json:"messages_json"`
	UpdatedAt   time.Time `json:"updated_at"`
}
