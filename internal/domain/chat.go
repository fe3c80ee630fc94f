package domain

import "time"

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type ChatMessage struct {
	Role      ChatRole   `json:"role"`
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
	At        time.Time  `json:"at"`
}

// ChatSession is one visitor's conversation with the concierge. It is owned
// by the caller and passed explicitly to every turn.
type ChatSession struct {
	ID        string        `json:"id"`
	Language  Language      `json:"language"`
	History   []ChatMessage `json:"history"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type ChatReply struct {
	SessionID  string     `json:"sessionId"`
	Text       string     `json:"text"`
	Citations  []Citation `json:"citations,omitempty"`
	WantsImage bool       `json:"wantsImage"`
	Provider   string     `json:"provider"`
	Fallback   bool       `json:"fallback"`
}
