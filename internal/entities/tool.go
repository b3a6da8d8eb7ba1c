package entities

import "strings"

// Tool represents a bookmarked tool owned by a single user
type Tool struct {
	ID          int64    `json:"id"`
	UserID      string   `json:"user_id"` // Owner, set once at creation
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ToolUpdate carries the mutable fields of a tool. Nil fields are left unchanged.
type ToolUpdate struct {
	Title       *string
	Link        *string
	Description *string
}

// IsOwnedBy reports whether userID owns the tool.
func (t *Tool) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}

// HasTagContaining reports whether any tag contains sub (case-sensitive).
// An empty sub matches every tool.
func (t *Tool) HasTagContaining(sub string) bool {
	if sub == "" {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(tag, sub) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can't alias the tag slice.
func (t *Tool) Clone() *Tool {
	c := *t
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	return &c
}
