package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Devices is the externally supplied device lexicon: canonical device names
// plus an alias table mapping spoken variants onto them. It is loaded once at
// boot and read-only afterwards; user-specific overrides live in the
// preference store instead.
type Devices struct {
	Canonical []string          `json:"canonical"`
	Aliases   map[string]string `json:"aliases"`
}

// LoadDevices reads the lexicon file. There is no safe default for a missing
// or broken lexicon, callers are expected to treat an error as fatal.
func LoadDevices(path string) (*Devices, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device lexicon: %w", err)
	}

	var d Devices
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse device lexicon %s: %w", path, err)
	}
	if len(d.Canonical) == 0 && len(d.Aliases) == 0 {
		return nil, fmt.Errorf("device lexicon %s has no entries", path)
	}
	if d.Aliases == nil {
		d.Aliases = map[string]string{}
	}
	return &d, nil
}

// Resolve maps a token to its canonical device name: alias table first, then
// a direct hit in the canonical list.
func (d *Devices) Resolve(token string) (string, bool) {
	if c, ok := d.Aliases[token]; ok {
		return c, true
	}
	if slices.Contains(d.Canonical, token) {
		return token, true
	}
	return "", false
}
