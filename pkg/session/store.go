package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harshinharshi/medical-chatbot/pkg/types"
)

// Thread owns the ordered, append-only message log of one conversation.
// Its mutex serializes whole exchanges: two concurrent requests for the same
// thread id would otherwise interleave appends and break the tool-call /
// tool-result pairing.
type Thread struct {
	mu        sync.Mutex
	id        string
	messages  []types.Message
	createdAt time.Time
	updatedAt time.Time
}

// ID returns the thread identifier
func (t *Thread) ID() string {
	return t.id
}

// Lock takes the thread for one exchange
func (t *Thread) Lock() {
	t.mu.Lock()
}

// Unlock releases the thread after an exchange
func (t *Thread) Unlock() {
	t.mu.Unlock()
}

// Append adds messages to the log in order. Messages without an id get one
// assigned. The caller must hold the thread lock.
func (t *Thread) Append(messages ...types.Message) {
	for _, msg := range messages {
		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}
		t.messages = append(t.messages, msg)
	}
	t.updatedAt = time.Now()
}

// Messages returns a copy of the log. The caller must hold the thread lock.
func (t *Thread) Messages() []types.Message {
	out := make([]types.Message, len(t.messages))
	for i, msg := range t.messages {
		out[i] = msg.Clone()
	}
	return out
}

// Len returns the number of messages in the log. The caller must hold the
// thread lock.
func (t *Thread) Len() int {
	return len(t.messages)
}

// Store keeps conversation threads keyed by thread id for the process
// lifetime. Threads are created on first use and never evicted.
type Store struct {
	mu      sync.RWMutex
	threads map[string]*Thread
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		threads: make(map[string]*Thread),
	}
}

// Get returns the thread for the given id, creating an empty one if absent
func (s *Store) Get(threadID string) *Thread {
	s.mu.RLock()
	thread, exists := s.threads[threadID]
	s.mu.RUnlock()
	if exists {
		return thread
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if thread, exists = s.threads[threadID]; exists {
		return thread
	}
	thread = &Thread{
		id:        threadID,
		createdAt: time.Now(),
	}
	s.threads[threadID] = thread
	return thread
}

// Snapshot returns a read-only copy of a thread's log, or nil when the
// thread does not exist.
func (s *Store) Snapshot(threadID string) []types.Message {
	s.mu.RLock()
	thread, exists := s.threads[threadID]
	s.mu.RUnlock()
	if !exists {
		return nil
	}

	thread.Lock()
	defer thread.Unlock()
	return thread.Messages()
}

// Len returns the number of known threads
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.threads)
}
