package session

import "sync"

// MemoryTokens is a TokenStore kept in memory. It backs tests and any
// non-browser build of the client.
type MemoryTokens struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokens) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryTokens) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryTokens) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
