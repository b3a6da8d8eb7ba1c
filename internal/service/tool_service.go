package service

import (
	"context"
	"errors"
	"fmt"

	"femaqua-be/internal/apperrors"
	"femaqua-be/internal/entities"
	"femaqua-be/internal/repository"
)

// ToolService defines the interface for tool business logic.
// Every method takes the acting user's id and only lets the owner through.
type ToolService interface {
	List(ctx context.Context, userID, tag string) ([]*entities.Tool, error)
	Create(ctx context.Context, userID, title, link, description string, tags []string) (*entities.Tool, error)
	Get(ctx context.Context, userID string, toolID int64) (*entities.Tool, error)
	Update(ctx context.Context, userID string, toolID int64, fields entities.ToolUpdate) (*entities.Tool, error)
	Delete(ctx context.Context, userID string, toolID int64) error
}

type toolService struct {
	toolRepo repository.ToolRepository
}

// NewToolService creates a new tool service
func NewToolService(toolRepo repository.ToolRepository) ToolService {
	return &toolService{
		toolRepo: toolRepo,
	}
}

// List returns the user's tools in insertion order, optionally restricted to
// tools with a tag containing tag
func (s *toolService) List(ctx context.Context, userID, tag string) ([]*entities.Tool, error) {
	tools, err := s.toolRepo.FindAllForOwner(ctx, userID, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, nil
}

// Create stores a new tool owned by userID
func (s *toolService) Create(ctx context.Context, userID, title, link, description string, tags []string) (*entities.Tool, error) {
	if tags == nil {
		tags = []string{}
	}

	tool, err := s.toolRepo.Create(ctx, &entities.Tool{
		UserID:      userID,
		Title:       title,
		Link:        link,
		Description: description,
		Tags:        tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}
	return tool, nil
}

// Get returns a single tool owned by userID
func (s *toolService) Get(ctx context.Context, userID string, toolID int64) (*entities.Tool, error) {
	return s.findOwned(ctx, userID, toolID)
}

// Update changes title, link and description. Tags and owner never change.
func (s *toolService) Update(ctx context.Context, userID string, toolID int64, fields entities.ToolUpdate) (*entities.Tool, error) {
	if _, err := s.findOwned(ctx, userID, toolID); err != nil {
		return nil, err
	}

	tool, err := s.toolRepo.Update(ctx, toolID, fields)
	if errors.Is(err, repository.ErrNotFound) {
		// deleted between the ownership check and the write
		return nil, apperrors.ErrToolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tool: %w", err)
	}
	return tool, nil
}

// Delete permanently removes a tool owned by userID
func (s *toolService) Delete(ctx context.Context, userID string, toolID int64) error {
	if _, err := s.findOwned(ctx, userID, toolID); err != nil {
		return err
	}

	err := s.toolRepo.Delete(ctx, toolID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrToolNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	return nil
}

// findOwned resolves a tool and checks ownership. A tool owned by someone
// else is reported as forbidden, not as missing.
func (s *toolService) findOwned(ctx context.Context, userID string, toolID int64) (*entities.Tool, error) {
	tool, err := s.toolRepo.FindByID(ctx, toolID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrToolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tool: %w", err)
	}

	if !tool.IsOwnedBy(userID) {
		return nil, apperrors.ErrToolForbidden
	}
	return tool, nil
}
