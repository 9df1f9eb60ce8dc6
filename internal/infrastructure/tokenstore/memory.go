package tokenstore

import (
	"context"
	"sync"

	"github.com/campusjobs/jobboard/internal/core/ports"
)

var (
	_ ports.TokenStore = (*Memory)(nil)
	_ ports.TokenStore = (*File)(nil)
)

// Memory keeps the token for the lifetime of the process only.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *Memory) Save(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
