// Package secure layers the encryption utility over the record store
// for documents that must never hit disk in plaintext (credentials,
// auth state).
//
// Reads carry the same fallback semantics as the plain store: a
// missing, undecryptable or unparsable document resolves to the
// caller's fallback value. A failed decrypt therefore presents as "no
// data", never as an error, matching the plain store's self-healing
// policy; the condition is logged for diagnosability.
package secure

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/storage/record"
	"github.com/halcyonbrowser/backend/internal/storage/vault"
)

// Store persists encrypted global documents.
type Store struct {
	records *record.Store
	cipher  *vault.Cipher
	log     *logging.Logger
}

// New creates a secure store over the given record store and cipher.
func New(records *record.Store, cipher *vault.Cipher, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{records: records, cipher: cipher, log: log}
}

// Read returns the decrypted, decoded document, or fallback when the
// document is missing, malformed or fails authentication.
func Read[T any](s *Store, name string, fallback T) T {
	raw, ok := s.records.ReadRaw(record.Global(), name)
	if !ok {
		return fallback
	}

	plaintext, err := s.cipher.Decrypt(string(raw))
	if err != nil {
		s.log.Warn("encrypted document undecryptable, using fallback",
			zap.String("document", name),
			zap.Error(err))
		return fallback
	}

	var v T
	if err := sonic.Unmarshal([]byte(plaintext), &v); err != nil {
		s.log.Warn("encrypted document unparsable, using fallback",
			zap.String("document", name),
			zap.Error(err))
		return fallback
	}
	return v
}

// Write serializes v, encrypts it and replaces the document wholesale.
func (s *Store) Write(name string, v any) error {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("secure: marshal %s: %w", name, err)
	}
	envelope, err := s.cipher.Encrypt(string(plaintext))
	if err != nil {
		return fmt.Errorf("secure: encrypt %s: %w", name, err)
	}
	return s.records.WriteRaw(record.Global(), name, []byte(envelope))
}
