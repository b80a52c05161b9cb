package model

// InboxMessage is a host-app notification carried through snapshots. The
// derivation core only round-trips these; it never interprets them.
type InboxMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
