// Package paths provides the on-disk layout of the browser data root.
//
// All components resolve document locations through this package so the
// layout stays in one place:
//
//	<root>/profiles.json        profile index
//	<root>/vault.key            encryption key
//	<root>/auth-state.enc       encrypted auth state
//	<root>/credentials.enc      encrypted credentials
//	<root>/profiles/<id>/*.json per-profile documents
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Global documents, stored directly under the data root.
const (
	ProfilesFile    = "profiles.json"
	KeyFile         = "vault.key"
	AuthStateFile   = "auth-state.enc"
	CredentialsFile = "credentials.enc"
)

// Per-profile documents, stored under profiles/<id>/.
const (
	BookmarksFile = "bookmarks.json"
	HistoryFile   = "history.json"
	SettingsFile  = "settings.json"
	SessionFile   = "session.json"
	DownloadsFile = "downloads.json"
)

// profilesDir is the subdirectory holding all per-profile namespaces.
const profilesDir = "profiles"

// DefaultDataRoot returns the data root under the user's config
// directory, falling back to a dot directory in $HOME.
func DefaultDataRoot() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "halcyon")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".halcyon"
	}
	return filepath.Join(home, ".halcyon")
}

// GlobalFile resolves a global document inside the data root.
func GlobalFile(root, name string) string {
	return filepath.Join(root, name)
}

// ProfileDir resolves a profile's namespace directory.
func ProfileDir(root, profileID string) string {
	return filepath.Join(root, profilesDir, profileID)
}

// ProfileFile resolves a document inside a profile's namespace.
func ProfileFile(root, profileID, name string) string {
	return filepath.Join(ProfileDir(root, profileID), name)
}

// ValidateProfileID rejects ids that would escape the profiles
// directory when used as a path component.
func ValidateProfileID(profileID string) error {
	if profileID == "" {
		return fmt.Errorf("profile ID cannot be empty")
	}
	if filepath.IsAbs(profileID) {
		return fmt.Errorf("profile ID cannot be an absolute path")
	}
	if profileID == "." || profileID == ".." {
		return fmt.Errorf("profile ID contains invalid path components")
	}
	if filepath.Clean(profileID) != profileID || filepath.Base(profileID) != profileID {
		return fmt.Errorf("profile ID contains invalid path components")
	}
	return nil
}
