package entity

import "time"

// Haiku is the read model returned by the API: tags restored to list form
// and the like count computed from the live like rows. It is built fresh
// from query results, never by mutating a persisted row.
type Haiku struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	Color      string    `json:"color"`
	IsDraft    bool      `json:"is_draft"`
	Tags       []string  `json:"tags"`
	Date       time.Time `json:"date"`
	OwnerID    uint      `json:"owner_id"`
	Owner      *User     `json:"owner"`
	LikesCount int       `json:"likes_count"`
}
