package conversation

import (
	"context"
	"sync"
)

// MemoryStore keeps conversations in process memory. History is lost
// on restart and grows for the process lifetime; the durable variant
// lives in internal/store. One mutex per identity, so concurrent
// requests for different customers never contend.
type MemoryStore struct {
	mu    sync.RWMutex
	convs map[string]*memConv
}

type memConv struct {
	mu    sync.Mutex
	turns Conversation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{convs: make(map[string]*memConv)}
}

func (s *MemoryStore) entry(email string) *memConv {
	s.mu.RLock()
	c, ok := s.convs[email]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.convs[email]; ok {
		return c
	}
	c = &memConv{}
	s.convs[email] = c
	return c
}

func (s *MemoryStore) GetOrCreate(_ context.Context, email string, seed Turn) (Conversation, error) {
	c := s.entry(email)
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.turns) == 0 {
		c.turns = Conversation{seed}
	}
	return append(Conversation(nil), c.turns...), nil
}

func (s *MemoryStore) Append(_ context.Context, email string, turn Turn) (Conversation, error) {
	c := s.entry(email)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, turn)
	return append(Conversation(nil), c.turns...), nil
}
