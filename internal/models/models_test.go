package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"femaqua-be/internal/entities"
)

func TestNewToolResponse_HidesOwnerAndNeverNullTags(t *testing.T) {
	resp := NewToolResponse(&entities.Tool{ID: 7, UserID: "owner", Title: "Git"})

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &body))

	assert.NotContains(t, body, "user_id")
	assert.Equal(t, []interface{}{}, body["tags"])
	assert.Len(t, body, 5)
}

func TestNewToolResponses_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(NewToolResponses(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestNewUserResponse_HidesPasswordHash(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := NewUserResponse(&entities.User{
		ID: "u1", Name: "John", Email: "john@x.com", PasswordHash: "secret", CreatedAt: now, UpdatedAt: now,
	})

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.Contains(t, string(b), `"email":"john@x.com"`)
}

func TestUpdateToolRequest_ToUpdate(t *testing.T) {
	title := "Git2"
	req := UpdateToolRequest{Title: &title}

	u := req.ToUpdate()
	require.NotNil(t, u.Title)
	assert.Equal(t, "Git2", *u.Title)
	assert.Nil(t, u.Link)
	assert.Nil(t, u.Description)
}
