package repository

//go:generate mockgen -source=tool_repository.go -destination=mocks/mock_tool_repository.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"femaqua-be/internal/entities"
)

// ToolRepository defines the interface for tool persistence
type ToolRepository interface {
	Create(ctx context.Context, tool *entities.Tool) (*entities.Tool, error)
	FindByID(ctx context.Context, id int64) (*entities.Tool, error)
	// FindAllForOwner returns the owner's tools in insertion order. A non-empty
	// tag keeps only tools with at least one tag containing it.
	FindAllForOwner(ctx context.Context, userID, tag string) ([]*entities.Tool, error)
	Update(ctx context.Context, id int64, fields entities.ToolUpdate) (*entities.Tool, error)
	Delete(ctx context.Context, id int64) error
}

type toolRepository struct {
	db *sql.DB
}

// NewToolRepository creates a new Postgres-backed tool repository
func NewToolRepository(db *sql.DB) ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `id, user_id, title, link, description, tags`

// Create inserts a new tool. Tags are stored as a JSONB array.
func (r *toolRepository) Create(ctx context.Context, tool *entities.Tool) (*entities.Tool, error) {
	tags, err := encodeTags(tool.Tags)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO tools (user_id, title, link, description, tags)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		RETURNING ` + toolColumns

	created, err := scanTool(r.db.QueryRowContext(ctx, query,
		tool.UserID,
		tool.Title,
		tool.Link,
		tool.Description,
		tags,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	return created, nil
}

// FindByID finds a tool by its ID regardless of owner
func (r *toolRepository) FindByID(ctx context.Context, id int64) (*entities.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`

	tool, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tool: %w", err)
	}

	return tool, nil
}

// FindAllForOwner retrieves all tools for a specific user, optionally filtered by tag substring
func (r *toolRepository) FindAllForOwner(ctx context.Context, userID, tag string) ([]*entities.Tool, error) {
	// strpos keeps the filter literal: % and _ in the tag are not wildcards
	query := `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE user_id = $1
		AND ($2::text = '' OR EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(tags) AS t(tag)
			WHERE strpos(t.tag, $2::text) > 0
		))
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to get tools: %w", err)
	}
	defer rows.Close()

	tools := make([]*entities.Tool, 0)
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		tools = append(tools, tool)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tools: %w", err)
	}

	return tools, nil
}

// Update sets the supplied fields. Tags and owner are never changed here.
func (r *toolRepository) Update(ctx context.Context, id int64, fields entities.ToolUpdate) (*entities.Tool, error) {
	query := `
		UPDATE tools
		SET title = COALESCE($2, title),
			link = COALESCE($3, link),
			description = COALESCE($4, description)
		WHERE id = $1
		RETURNING ` + toolColumns

	tool, err := scanTool(r.db.QueryRowContext(ctx, query,
		id,
		nullString(fields.Title),
		nullString(fields.Link),
		nullString(fields.Description),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tool: %w", err)
	}

	return tool, nil
}

// Delete removes a tool permanently
func (r *toolRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanTool(row rowScanner) (*entities.Tool, error) {
	var tool entities.Tool
	var tags []byte
	err := row.Scan(
		&tool.ID,
		&tool.UserID,
		&tool.Title,
		&tool.Link,
		&tool.Description,
		&tags,
	)
	if err != nil {
		return nil, err
	}

	tool.Tags, err = decodeTags(tags)
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(data), nil
}

func decodeTags(data []byte) ([]string, error) {
	tags := []string{}
	if len(data) == 0 {
		return tags, nil
	}
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
