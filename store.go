package folio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the local persistence collaborator: an opaque key/value blob
// store (browser localStorage in the original client, a state directory
// here). Every stored blob is untrusted; the typed loaders below parse
// defensively and fall back to hardcoded defaults on any parse error or
// type mismatch, never propagating the error.
type Store interface {
	// GetItem returns the blob stored under key, if any.
	GetItem(key string) (string, bool)
	// SetItem stores the blob under key, replacing any previous value.
	SetItem(key, value string) error
}

// Persisted keys. Each concern is namespaced and defaulted independently,
// so one corrupted blob never takes the others down with it.
const (
	KeyToken    = "pm_token"
	KeyEmail    = "pm_email"
	KeyLocale   = "pm_locale"
	KeyFilter   = "pm_filters"
	KeyTargets  = "pm_targets"
	KeyRates    = "pm_rates"
	KeyCurrency = "pm_currency"
	KeyBudget   = "pm_budget"
	KeyHistory  = "pm_history"
	KeyEvents   = "pm_events"
	KeyPresets  = "pm_presets"
)

// DirStore persists each key as a file in a directory, human-readable and
// git-friendly.
type DirStore struct {
	dir string
}

// NewDirStore creates the directory if needed and returns a store over it.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create state directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string {
	// keys are a closed set of identifiers, safe as file names
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) GetItem(key string) (string, bool) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(content), true
}

func (s *DirStore) SetItem(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("cannot persist %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore map[string]string

func (s MemStore) GetItem(key string) (string, bool) { v, ok := s[key]; return v, ok }
func (s MemStore) SetItem(key, value string) error   { s[key] = value; return nil }

// --- typed defensive loaders ---

// LoadFilter returns the persisted filter, with every invalid or missing
// field replaced by its default. It never fails.
func LoadFilter(s Store) Filter {
	f := DefaultFilter()
	if blob, ok := s.GetItem(KeyFilter); ok {
		// a partial parse keeps whatever fields did decode
		_ = json.Unmarshal([]byte(blob), &f)
	}
	f.normalize()
	return f
}

// DefaultTargets is the allocation target fallback.
func DefaultTargets() map[Category]float64 {
	return map[Category]float64{Stock: 60, Crypto: 20, ETF: 20}
}

// LoadTargets returns the persisted allocation targets, clamped to 0-100,
// falling back to DefaultTargets on any parse failure.
func LoadTargets(s Store) map[Category]float64 {
	blob, ok := s.GetItem(KeyTargets)
	if !ok {
		return DefaultTargets()
	}
	var raw map[string]float64
	if err := json.Unmarshal([]byte(blob), &raw); err != nil || len(raw) == 0 {
		return DefaultTargets()
	}
	targets := make(map[Category]float64, len(raw))
	for key, pct := range raw {
		c := NormalizeCategory(key)
		if c == Unknown {
			continue
		}
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		targets[c] = pct
	}
	if len(targets) == 0 {
		return DefaultTargets()
	}
	return targets
}

// LoadRates returns the persisted rate table merged over the defaults, so
// codes added after a user first persisted their table still resolve.
func LoadRates(s Store) RateTable {
	rates := RateTable(DefaultRates())
	blob, ok := s.GetItem(KeyRates)
	if !ok {
		return rates
	}
	var raw map[string]float64
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return rates
	}
	for code, rate := range raw {
		rates.Set(code, rate)
	}
	return rates
}

// LoadDisplayCurrency returns the persisted display currency, defaulting
// by locale.
func LoadDisplayCurrency(s Store, locale string) string {
	if code, ok := s.GetItem(KeyCurrency); ok {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) == 3 {
			return code
		}
	}
	return DefaultCurrency(locale)
}

// LoadBudget returns the persisted monthly budget, 0 (unset) on any
// invalid content.
func LoadBudget(s Store) float64 {
	blob, ok := s.GetItem(KeyBudget)
	if !ok {
		return 0
	}
	var budget float64
	if err := json.Unmarshal([]byte(blob), &budget); err != nil || budget < 0 || !isFinite(budget) {
		return 0
	}
	return budget
}

// LoadHistory returns the persisted value history, empty on any failure.
func LoadHistory(s Store) ValueHistory {
	var h ValueHistory
	if blob, ok := s.GetItem(KeyHistory); ok {
		if err := json.Unmarshal([]byte(blob), &h); err != nil {
			return ValueHistory{}
		}
	}
	if len(h.Points) > ValueHistoryCap {
		h.Points = h.Points[len(h.Points)-ValueHistoryCap:]
	}
	return h
}

// LoadEvents returns the persisted event log, empty on any failure.
func LoadEvents(s Store) EventLog {
	var l EventLog
	if blob, ok := s.GetItem(KeyEvents); ok {
		if err := json.Unmarshal([]byte(blob), &l); err != nil {
			return EventLog{}
		}
	}
	if len(l.Events) > EventLogCap {
		l.Events = l.Events[:EventLogCap]
	}
	return l
}

// LoadPresets returns the persisted view presets, dropping entries with an
// empty name and normalizing each embedded filter.
func LoadPresets(s Store) []Preset {
	blob, ok := s.GetItem(KeyPresets)
	if !ok {
		return nil
	}
	var raw []Preset
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil
	}
	presets := raw[:0]
	for _, p := range raw {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		p.Filter.normalize()
		presets = append(presets, p)
	}
	return presets
}

// LoadLocale returns the persisted locale, defaulting to en-US.
func LoadLocale(s Store) string {
	if locale, ok := s.GetItem(KeyLocale); ok {
		if locale = strings.TrimSpace(locale); locale != "" {
			return locale
		}
	}
	return "en-US"
}

// saveJSON persists a JSON-encodable value under key.
func saveJSON(s Store, key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode %q: %w", key, err)
	}
	return s.SetItem(key, string(blob))
}
