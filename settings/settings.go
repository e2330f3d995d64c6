package settings

import (
	"strings"
	"sync"
	"time"
)

/* Store holds the credential and environment the console works against
 * Reads happen on every Registry call, so changes apply immediately
 */
type Store struct {
	mu            sync.RWMutex
	apiKey        string
	environmentID string
	projectID     string
}

// Values is the editable content of a Store
type Values struct {
	APIKey        string `json:"apiKey"`
	EnvironmentID string `json:"environmentId"`
	ProjectID     string `json:"projectId"`
}

// View is the read model returned to the UI, the key is never exposed
type View struct {
	APIKey        string `json:"apiKey"`
	HasAPIKey     bool   `json:"hasApiKey"`
	EnvironmentID string `json:"environmentId"`
	ProjectID     string `json:"projectId"`
}

// Export is the downloadable settings document
type Export struct {
	Kontent   View      `json:"kontent"`
	Timestamp time.Time `json:"timestamp"`
}

// NewStore creates a Store with initial values
func NewStore(v Values) *Store {
	s := &Store{}
	s.Apply(v)
	return s
}

func (s *Store) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

func (s *Store) EnvironmentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.environmentID
}

func (s *Store) ProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectID
}

// Apply replaces all values
func (s *Store) Apply(v Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = strings.TrimSpace(v.APIKey)
	s.environmentID = strings.TrimSpace(v.EnvironmentID)
	s.projectID = strings.TrimSpace(v.ProjectID)
}

/* Update applies a change from the settings page
 * A masked key coming back from the UI keeps the stored key
 */
func (s *Store) Update(v Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key := strings.TrimSpace(v.APIKey); key != Mask(s.apiKey) {
		s.apiKey = key
	}
	s.environmentID = strings.TrimSpace(v.EnvironmentID)
	s.projectID = strings.TrimSpace(v.ProjectID)
}

// SetEnvironmentIDIfEmpty fills the environment id reported by the host, returns true when it did
func (s *Store) SetEnvironmentIDIfEmpty(id string) bool {
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.environmentID != "" || id == "" {
		return false
	}
	s.environmentID = id
	return true
}

// View returns the masked read model
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{
		APIKey:        Mask(s.apiKey),
		HasAPIKey:     s.apiKey != "",
		EnvironmentID: s.environmentID,
		ProjectID:     s.projectID,
	}
}

// Export returns the settings document stamped with now
func (s *Store) Export(now time.Time) Export {
	return Export{Kontent: s.View(), Timestamp: now.UTC()}
}

// Mask hides all but the last four characters of a key
func Mask(key string) string {
	if key == "" {
		return ""
	}
	const visible = 4
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}
