package models

// ChatMessage is one inbound chat turn.
type ChatMessage struct {
	User    string `json:"user" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ChatReply is the envelope every chat branch answers with. Data carries
// passthrough platform JSON on success; Message carries a human-readable
// error for failed commands. Both are omitted when empty.
type ChatReply struct {
	Assistant string `json:"assistant"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
}
