// Package profiles implements the profile directory: the global index
// of user profiles and the in-process active-profile pointer.
package profiles

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/id"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

// Manager owns the profile index document and tracks the active
// profile for the process lifetime. The active pointer is deliberately
// not persisted: a restart always reopens the default profile.
type Manager struct {
	records *record.Store
	log     *logging.Logger

	mu       sync.RWMutex
	activeID string
}

// NewManager creates a profile manager starting on the default profile.
func NewManager(records *record.Store, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNop()
	}
	return &Manager{
		records:  records,
		log:      log,
		activeID: types.DefaultProfileID,
	}
}

// List returns all profiles, materializing the index with the default
// profile on first access.
func (m *Manager) List() []types.Profile {
	list := record.Read(m.records, record.Global(), paths.ProfilesFile, []types.Profile(nil))
	if len(list) == 0 {
		list = []types.Profile{defaultProfile()}
		if err := record.Write(m.records, record.Global(), paths.ProfilesFile, list); err != nil {
			m.log.Error("failed to materialize profile index", zap.Error(err))
		}
	}
	return list
}

// Create appends a new profile with a freshly generated id.
func (m *Manager) Create(name, avatar string) (types.Profile, error) {
	profile := types.Profile{
		ID:        id.NewProfileID().String(),
		Name:      name,
		Avatar:    avatar,
		CreatedAt: time.Now(),
		IsDefault: false,
	}

	list := append(m.List(), profile)
	if err := record.Write(m.records, record.Global(), paths.ProfilesFile, list); err != nil {
		return types.Profile{}, err
	}

	m.log.Info("profile created",
		zap.String("profile", profile.ID),
		zap.String("name", name))
	return profile, nil
}

// Delete removes a profile and its entire on-disk namespace. Deleting
// the default profile is a no-op. If the deleted profile was active,
// the active pointer resets to default.
func (m *Manager) Delete(profileID string) ([]types.Profile, error) {
	list := m.List()
	if profileID == types.DefaultProfileID {
		return list, nil
	}

	kept := make([]types.Profile, 0, len(list))
	found := false
	for _, p := range list {
		if p.ID == profileID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return list, nil
	}

	if err := record.Write(m.records, record.Global(), paths.ProfilesFile, kept); err != nil {
		return list, err
	}
	if err := m.records.RemoveProfile(profileID); err != nil {
		m.log.Warn("failed to remove profile namespace",
			zap.String("profile", profileID),
			zap.Error(err))
	}

	m.mu.Lock()
	if m.activeID == profileID {
		m.activeID = types.DefaultProfileID
	}
	m.mu.Unlock()

	m.log.Info("profile deleted", zap.String("profile", profileID))
	return kept, nil
}

// Switch makes the given profile active. An unknown id leaves the
// active profile unchanged and reports false.
func (m *Manager) Switch(profileID string) (types.Profile, bool) {
	for _, p := range m.List() {
		if p.ID == profileID {
			m.mu.Lock()
			m.activeID = profileID
			m.mu.Unlock()
			m.log.Info("active profile switched", zap.String("profile", profileID))
			return p, true
		}
	}
	return types.Profile{}, false
}

// Active returns the active profile, falling back to the default entry
// when the pointer refers to a profile that no longer exists.
func (m *Manager) Active() types.Profile {
	activeID := m.ActiveID()

	list := m.List()
	for _, p := range list {
		if p.ID == activeID {
			return p
		}
	}
	for _, p := range list {
		if p.ID == types.DefaultProfileID {
			return p
		}
	}
	return defaultProfile()
}

// ActiveID returns the active profile id.
func (m *Manager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeID
}

func defaultProfile() types.Profile {
	return types.Profile{
		ID:        types.DefaultProfileID,
		Name:      "Default",
		Avatar:    "",
		CreatedAt: time.Now(),
		IsDefault: true,
	}
}
