package models

import "femaqua-be/internal/entities"

// ToolResponse is the public view of a tool. The owner is never exposed.
type ToolResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// NewToolResponse projects a single tool
func NewToolResponse(t *entities.Tool) ToolResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return ToolResponse{
		ID:          t.ID,
		Title:       t.Title,
		Link:        t.Link,
		Description: t.Description,
		Tags:        tags,
	}
}

// NewToolResponses projects a list of tools, always as a JSON array
func NewToolResponses(tools []*entities.Tool) []ToolResponse {
	out := make([]ToolResponse, 0, len(tools))
	for _, t := range tools {
		out = append(out, NewToolResponse(t))
	}
	return out
}
