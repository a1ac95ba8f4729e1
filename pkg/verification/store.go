package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// Store is an in-memory TTL store for short-lived values keyed by
// (purpose, key), e.g. signup verification codes keyed by email.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	records map[string]record
}

type record struct {
	value     string
	expiresAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		records: make(map[string]record),
	}
}

func makeKey(purpose, key string) string {
	return purpose + ":" + key
}

// GenerateCode returns a random numeric code of the given length.
func GenerateCode(length int) string {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}

func (s *Store) Put(purpose, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[makeKey(purpose, key)] = record{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Get returns the stored value if present and not expired.
func (s *Store) Get(purpose, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[makeKey(purpose, key)]
	if !ok {
		return "", false
	}
	if s.now().After(rec.expiresAt) {
		delete(s.records, makeKey(purpose, key))
		return "", false
	}
	return rec.value, true
}

// Pop removes and returns the stored value; expired entries report absent.
func (s *Store) Pop(purpose, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := makeKey(purpose, key)
	rec, ok := s.records[k]
	if !ok {
		return "", false
	}
	delete(s.records, k)
	if s.now().After(rec.expiresAt) {
		return "", false
	}
	return rec.value, true
}

func (s *Store) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("verification.Store(%d entries, ttl=%s)", len(s.records), s.ttl)
}
