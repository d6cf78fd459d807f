package entity

import "time"

type NoticeType string

const NoticeTypeError NoticeType = "error"

// Notice is a short user-facing message that dismisses itself.
type Notice struct {
	Code      string     `json:"code"`
	Message   string     `json:"message"`
	Type      NoticeType `json:"type"`
	ExpiresAt time.Time  `json:"expires_at"`
}
