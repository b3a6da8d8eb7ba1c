package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"femaqua-be/internal/entities"
)

// In-memory backends. Used by tests and local runs; each is safe for
// concurrent use and copies records in and out.

type memoryUserRepository struct {
	mu      sync.RWMutex
	users   map[string]*entities.User // keyed by ID
	byEmail map[string]string         // email -> ID
	now     func() time.Time
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:   make(map[string]*entities.User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (m *memoryUserRepository) Create(ctx context.Context, name, email, passwordHash string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[email]; ok {
		return nil, ErrDuplicate
	}

	now := m.now().UTC()
	u := &entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[u.ID] = u
	m.byEmail[email] = u.ID

	c := *u
	return &c, nil
}

func (m *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	c := *m.users[id]
	return &c, nil
}

func (m *memoryUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *u
	return &c, nil
}

type memoryToolRepository struct {
	mu     sync.RWMutex
	tools  map[int64]*entities.Tool
	order  []int64 // insertion order
	nextID int64
}

// NewMemoryToolRepository creates an empty in-memory tool repository
func NewMemoryToolRepository() ToolRepository {
	return &memoryToolRepository{
		tools: make(map[int64]*entities.Tool),
	}
}

func (m *memoryToolRepository) Create(ctx context.Context, tool *entities.Tool) (*entities.Tool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	t := tool.Clone()
	t.ID = m.nextID
	if t.Tags == nil {
		t.Tags = []string{}
	}
	m.tools[t.ID] = t
	m.order = append(m.order, t.ID)

	return t.Clone(), nil
}

func (m *memoryToolRepository) FindByID(ctx context.Context, id int64) (*entities.Tool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tools[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t.Clone(), nil
}

func (m *memoryToolRepository) FindAllForOwner(ctx context.Context, userID, tag string) ([]*entities.Tool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tools := make([]*entities.Tool, 0)
	for _, id := range m.order {
		t, ok := m.tools[id]
		if !ok || !t.IsOwnedBy(userID) || !t.HasTagContaining(tag) {
			continue
		}
		tools = append(tools, t.Clone())
	}
	return tools, nil
}

func (m *memoryToolRepository) Update(ctx context.Context, id int64, fields entities.ToolUpdate) (*entities.Tool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tools[id]
	if !ok {
		return nil, ErrNotFound
	}
	if fields.Title != nil {
		t.Title = *fields.Title
	}
	if fields.Link != nil {
		t.Link = *fields.Link
	}
	if fields.Description != nil {
		t.Description = *fields.Description
	}
	return t.Clone(), nil
}

func (m *memoryToolRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tools[id]; !ok {
		return ErrNotFound
	}
	delete(m.tools, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

type memoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*entities.AccessToken // keyed by hash
}

// NewMemoryTokenRepository creates an empty in-memory token repository
func NewMemoryTokenRepository() TokenRepository {
	return &memoryTokenRepository{
		tokens: make(map[string]*entities.AccessToken),
	}
}

func (m *memoryTokenRepository) Create(ctx context.Context, token *entities.AccessToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tokens[token.TokenHash]; ok {
		return ErrDuplicate
	}
	c := *token
	m.tokens[token.TokenHash] = &c
	return nil
}

func (m *memoryTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entities.AccessToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tokens[tokenHash]
	if !ok {
		return nil, ErrNotFound
	}
	c := *t
	return &c, nil
}

func (m *memoryTokenRepository) Touch(ctx context.Context, tokenHash string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.tokens[tokenHash]; ok {
		t.LastUsedAt = &at
	}
	return nil
}

func (m *memoryTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tokens[tokenHash]; !ok {
		return ErrNotFound
	}
	delete(m.tokens, tokenHash)
	return nil
}
