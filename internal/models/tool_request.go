package models

import "femaqua-be/internal/entities"

// CreateToolRequest represents the request body for creating a tool.
// There is no owner field: the owner is always the authenticated user.
type CreateToolRequest struct {
	Title       string   `json:"title" binding:"required"`
	Link        string   `json:"link" binding:"required,url"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags" binding:"required"`
}

// UpdateToolRequest represents the request body for updating a tool.
// Omitted fields are left unchanged; tags cannot be updated.
type UpdateToolRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Link        *string `json:"link" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// ToUpdate converts the request into the fields the store should apply
func (r *UpdateToolRequest) ToUpdate() entities.ToolUpdate {
	return entities.ToolUpdate{
		Title:       r.Title,
		Link:        r.Link,
		Description: r.Description,
	}
}
