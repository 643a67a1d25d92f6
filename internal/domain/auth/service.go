// Package auth implements the local account service over the
// encrypted credential store. There is no server behind it: a session
// token is purely a local marker that a successful login happened in
// this browser installation.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/secure"
)

// PBKDF2 parameters. Deliberately slow so brute-forcing stored hashes
// stays expensive.
const (
	hashIterations = 120_000
	hashKeyLen     = 64
	saltLen        = 16
	tokenLen       = 32
)

var (
	// ErrDuplicateEmail is returned when registering an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("auth: duplicate email")

	// ErrInvalidCredentials is returned for any login mismatch. Unknown
	// email and wrong password are indistinguishable on purpose, to
	// avoid account enumeration.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// Profiles resolves the active profile bound into new auth states.
type Profiles interface {
	ActiveID() string
}

// Service exposes registration, login and session state.
type Service struct {
	store    *secure.Store
	profiles Profiles
	log      *logging.Logger
}

// NewService creates an auth service over the secure store.
func NewService(store *secure.Store, profiles Profiles, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	return &Service{store: store, profiles: profiles, log: log}
}

// State returns the current auth state; absence of a document means
// logged out.
func (s *Service) State() types.AuthState {
	return secure.Read(s.store, paths.AuthStateFile, types.AuthState{})
}

// Credentials returns all registered accounts in registration order.
func (s *Service) Credentials() []types.Credentials {
	return secure.Read(s.store, paths.CredentialsFile, []types.Credentials{})
}

// Register creates an account and logs it in. Email comparison is
// case-sensitive.
func (s *Service) Register(email, password string) (types.AuthState, error) {
	creds := s.Credentials()
	for _, c := range creds {
		if c.Email == email {
			return types.AuthState{}, ErrDuplicateEmail
		}
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return types.AuthState{}, fmt.Errorf("auth: salt: %w", err)
	}

	creds = append(creds, types.Credentials{
		Email:        email,
		PasswordHash: hashPassword(password, salt),
		Salt:         hex.EncodeToString(salt),
		CreatedAt:    time.Now(),
	})
	if err := s.store.Write(paths.CredentialsFile, creds); err != nil {
		return types.AuthState{}, err
	}

	state, err := s.openSession(email)
	if err != nil {
		return types.AuthState{}, err
	}
	s.log.Info("account registered", zap.String("email", email))
	return state, nil
}

// Login verifies the password against the stored hash and opens a
// session. Any mismatch fails with ErrInvalidCredentials and leaves
// the auth state untouched.
func (s *Service) Login(email, password string) (types.AuthState, error) {
	for _, c := range s.Credentials() {
		if c.Email != email {
			continue
		}
		salt, err := hex.DecodeString(c.Salt)
		if err != nil {
			break
		}
		if subtle.ConstantTimeCompare([]byte(hashPassword(password, salt)), []byte(c.PasswordHash)) != 1 {
			break
		}

		state, err := s.openSession(email)
		if err != nil {
			return types.AuthState{}, err
		}
		s.log.Info("login succeeded", zap.String("email", email))
		return state, nil
	}
	return types.AuthState{}, ErrInvalidCredentials
}

// Logout overwrites the auth state with the logged-out zero value.
// Tokens are not tracked or revoked anywhere else.
func (s *Service) Logout() error {
	if err := s.store.Write(paths.AuthStateFile, types.AuthState{}); err != nil {
		return err
	}
	s.log.Info("logged out")
	return nil
}

// SSOProviders returns the external login providers surfaced in the
// chrome's account screen. URLs are opaque to this service.
func (s *Service) SSOProviders() []types.SSOProvider {
	return []types.SSOProvider{
		{ID: "google", Name: "Google", URL: "https://accounts.google.com/o/oauth2/v2/auth"},
		{ID: "github", Name: "GitHub", URL: "https://github.com/login/oauth/authorize"},
	}
}

func (s *Service) openSession(email string) (types.AuthState, error) {
	token := make([]byte, tokenLen)
	if _, err := rand.Read(token); err != nil {
		return types.AuthState{}, fmt.Errorf("auth: token: %w", err)
	}

	state := types.AuthState{
		IsLoggedIn: true,
		Email:      email,
		Token:      base64.RawURLEncoding.EncodeToString(token),
		ProfileID:  s.profiles.ActiveID(),
	}
	if err := s.store.Write(paths.AuthStateFile, state); err != nil {
		return types.AuthState{}, err
	}
	return state, nil
}

func hashPassword(password string, salt []byte) string {
	return hex.EncodeToString(pbkdf2.Key([]byte(password), salt, hashIterations, hashKeyLen, sha512.New))
}
