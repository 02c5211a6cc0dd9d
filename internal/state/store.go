package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "log/slog"
)

// Plan is the executable outcome of a routed utterance, as served to callers
// and persisted in the short-term history.
type Plan struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// Entry is one routed decision, newest first in the history.
type Entry struct {
	TS   time.Time `json:"ts"`
	Text string    `json:"text"`
	Plan *Plan     `json:"plan,omitempty"`
}

// Prefs are the user-owned overrides. The device alias table here takes
// precedence over the static lexicon when the orchestrator resolves a
// transfer target.
type Prefs struct {
	DeviceAliases   map[string]string `json:"deviceAliases"`
	FavoriteArtists []string          `json:"favoriteArtists"`
	PreferredDevice string            `json:"preferredDevice,omitempty"`
}

// snapshot is the whole persisted record: read wholesale at open, rewritten
// wholesale after every mutation.
type snapshot struct {
	ShortTerm []Entry `json:"shortTerm"`
	Prefs     Prefs   `json:"prefs"`
}

const keepShort = 20

// Store is the capability surface the orchestrator and the serving layer
// need. Keeping it narrow means a different persistence discipline (locking,
// transactions, a real database) can slot in without touching routing.
type Store interface {
	Prefs() Prefs
	UpdatePrefs(p Prefs)
	UpsertAlias(alias, canonical string)
	ResolveAlias(name string) string
	Push(text string, plan *Plan)
	ShortTerm() []Entry
}

// FileStore keeps everything in memory and mirrors it to a single JSON file,
// best effort: read and write failures are logged and swallowed, the
// in-memory copy stays authoritative for the process lifetime.
type FileStore struct {
	mu   sync.Mutex
	path string
	snap snapshot
}

var _ Store = (*FileStore)(nil)

// Open loads the state file. Missing or corrupt files mean empty defaults,
// not an error.
func Open(path string) *FileStore {
	s := &FileStore{path: path, snap: defaults()}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Warn("State file unreadable, starting empty", "path", path, "err", err)
		return s
	}
	s.snap = snap
	if s.snap.Prefs.DeviceAliases == nil {
		s.snap.Prefs.DeviceAliases = map[string]string{}
	}
	if s.snap.ShortTerm == nil {
		s.snap.ShortTerm = []Entry{}
	}
	return s
}

func defaults() snapshot {
	return snapshot{
		ShortTerm: []Entry{},
		Prefs: Prefs{
			DeviceAliases:   map[string]string{},
			FavoriteArtists: []string{},
		},
	}
}

func (s *FileStore) Prefs() Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.snap.Prefs
	p.DeviceAliases = make(map[string]string, len(s.snap.Prefs.DeviceAliases))
	for k, v := range s.snap.Prefs.DeviceAliases {
		p.DeviceAliases[k] = v
	}
	p.FavoriteArtists = append([]string(nil), s.snap.Prefs.FavoriteArtists...)
	return p
}

// UpdatePrefs replaces the scalar preference fields. The alias table is only
// ever edited through UpsertAlias, bulk updates keep the existing one.
func (s *FileStore) UpdatePrefs(p Prefs) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aliases := s.snap.Prefs.DeviceAliases
	s.snap.Prefs = p
	s.snap.Prefs.DeviceAliases = aliases
	s.save()
}

func (s *FileStore) UpsertAlias(alias, canonical string) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if alias == "" || canonical == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Prefs.DeviceAliases[alias] = canonical
	s.save()
}

// ResolveAlias maps a spoken device name through the user's alias table,
// falling back to the (lowercased) name itself.
func (s *FileStore) ResolveAlias(name string) string {
	n := strings.ToLower(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.snap.Prefs.DeviceAliases[n]; ok && c != "" {
		return c
	}
	return n
}

// Push prepends a history entry and truncates to the most recent entries.
func (s *FileStore) Push(text string, plan *Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.ShortTerm = append([]Entry{{TS: time.Now(), Text: text, Plan: plan}}, s.snap.ShortTerm...)
	if len(s.snap.ShortTerm) > keepShort {
		s.snap.ShortTerm = s.snap.ShortTerm[:keepShort]
	}
	s.save()
}

func (s *FileStore) ShortTerm() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.snap.ShortTerm...)
}

// save rewrites the whole file. Callers hold mu.
func (s *FileStore) save() {
	raw, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		log.Warn("State marshal failed", "path", s.path, "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Warn("State dir create failed", "path", s.path, "err", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		log.Warn("State write failed", "path", s.path, "err", err)
	}
}
