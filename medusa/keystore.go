package medusa

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/f3rmion/medusa/hgamal"
)

// ErrKeyNotFound is returned for an unknown key id.
var ErrKeyNotFound = errors.New("medusa: key not found")

// KeyStore holds the one-time keypairs a client generated for pending
// re-encryption requests until the oracle delivers.
type KeyStore struct {
	lock sync.RWMutex
	keys map[string]hgamal.Keypair
}

// NewKeyStore returns an empty store.
func NewKeyStore() *KeyStore {
	return &KeyStore{
		keys: make(map[string]hgamal.Keypair),
	}
}

// Put stores kp under a new random id and returns the id.
func (s *KeyStore) Put(kp hgamal.Keypair) string {
	id := uuid.NewString()

	s.lock.Lock()
	defer s.lock.Unlock()

	s.keys[id] = kp
	return id
}

// Get returns the keypair stored under id.
func (s *KeyStore) Get(id string) (hgamal.Keypair, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	kp, ok := s.keys[id]
	if !ok {
		return hgamal.Keypair{}, ErrKeyNotFound
	}
	return kp, nil
}

// Take returns and removes the keypair stored under id.
func (s *KeyStore) Take(id string) (hgamal.Keypair, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	kp, ok := s.keys[id]
	if !ok {
		return hgamal.Keypair{}, ErrKeyNotFound
	}
	delete(s.keys, id)
	return kp, nil
}

// Delete removes id. Deleting an unknown id is a no-op.
func (s *KeyStore) Delete(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.keys, id)
}

// Len returns the number of stored keypairs.
func (s *KeyStore) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.keys)
}
