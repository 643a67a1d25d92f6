package types

import "time"

// DefaultProfileID is the id of the built-in profile. It always exists
// and cannot be deleted.
const DefaultProfileID = "default"

// Profile is an isolated user identity. Every profile owns its own
// on-disk namespace of browsing data.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	IsDefault bool      `json:"is_default"`
}

// Bookmark is a saved page reference, unique by URL within a profile.
type Bookmark struct {
	URL     string    `json:"url"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"added_at"`
}

// HistoryEntry is one visited-page record. History is a log, not a
// set: the same URL may appear many times.
type HistoryEntry struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	VisitedAt time.Time `json:"visited_at"`
}

// Search engine identifiers accepted by Settings.SearchEngine.
const (
	EngineGoogle     = "google"
	EngineDuckDuckGo = "duckduckgo"
	EngineBing       = "bing"
	EngineBrave      = "brave"
)

// SearchEngine describes one search engine the chrome can route
// queries to. The template is an opaque URL handed to the webview.
type SearchEngine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

// Settings is the per-profile preference document. Fields missing on
// disk fall back to the documented defaults.
type Settings struct {
	SearchEngine   string `json:"search_engine"`
	AdBlockEnabled bool   `json:"ad_block_enabled"`
	RestoreSession bool   `json:"restore_session"`
}

// SettingsPatch is a partial settings update. Nil fields are left
// unchanged.
type SettingsPatch struct {
	SearchEngine   *string `json:"search_engine,omitempty"`
	AdBlockEnabled *bool   `json:"ad_block_enabled,omitempty"`
	RestoreSession *bool   `json:"restore_session,omitempty"`
}

// SessionTab is one open tab captured in a session snapshot.
type SessionTab struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// DownloadState enumerates a download's lifecycle states.
type DownloadState string

const (
	DownloadProgressing DownloadState = "progressing"
	DownloadCompleted   DownloadState = "completed"
	DownloadCancelled   DownloadState = "cancelled"
	DownloadInterrupted DownloadState = "interrupted"
)

// DownloadItem is one download's lifecycle record, upserted by ID.
type DownloadItem struct {
	ID            string        `json:"id"`
	Filename      string        `json:"filename"`
	URL           string        `json:"url"`
	SavePath      string        `json:"save_path"`
	TotalBytes    int64         `json:"total_bytes"`
	ReceivedBytes int64         `json:"received_bytes"`
	State         DownloadState `json:"state"`
	StartedAt     time.Time     `json:"started_at"`
}

// Credentials is one registered local account. It only ever lives
// inside the encrypted credentials document.
type Credentials struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Salt         string    `json:"salt"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthState is the current login session. The zero value means
// logged out.
type AuthState struct {
	IsLoggedIn bool   `json:"is_logged_in"`
	Email      string `json:"email"`
	Token      string `json:"token"`
	ProfileID  string `json:"profile_id"`
}

// SSOProvider is an external login provider surfaced to the chrome.
// The URL is opaque to this service.
type SSOProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
