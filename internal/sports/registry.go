package sports

import (
	"fmt"
	"strings"
)

// DefaultKey is the profile returned for unrecognized sport identifiers.
// Falling back instead of failing is the documented default-on-miss policy.
const DefaultKey = "soccer"

// Registry is a read-only lookup table over sport profiles. It is safe for
// unlimited concurrent reads after construction.
type Registry struct {
	profiles map[string]*SportProfile
	aliases  map[string]string
	fallback *SportProfile
}

// NewRegistry builds a registry from explicit profiles, mostly for tests.
// fallbackKey must name one of the provided profiles.
func NewRegistry(profiles []SportProfile, fallbackKey string) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("sports: at least one profile is required")
	}
	table := make(map[string]*SportProfile, len(profiles))
	for i := range profiles {
		p := profiles[i]
		key := normalizeKey(p.Key)
		if key == "" {
			return nil, fmt.Errorf("sports: profile %d has empty key", i)
		}
		if _, exists := table[key]; exists {
			return nil, fmt.Errorf("sports: duplicate profile key %q", key)
		}
		table[key] = &p
	}
	fallback, ok := table[normalizeKey(fallbackKey)]
	if !ok {
		return nil, fmt.Errorf("sports: fallback key %q not in table", fallbackKey)
	}
	return &Registry{profiles: table, fallback: fallback}, nil
}

// DefaultRegistry returns the built-in sport table with the soccer fallback.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(builtinProfiles, DefaultKey)
	if err != nil {
		// The builtin table is static; a construction failure is a programming error.
		panic(err)
	}
	reg.aliases = aliases
	return reg
}

// Resolve maps a free-form sport identifier onto a profile. Lookup is
// case-normalized and alias-aware; unknown keys return the fallback profile,
// never an error.
func (r *Registry) Resolve(sportKey string) *SportProfile {
	key := normalizeKey(sportKey)
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	if p, ok := r.profiles[key]; ok {
		return p
	}
	return r.fallback
}

// Known reports whether the identifier resolves to a non-fallback profile.
func (r *Registry) Known(sportKey string) bool {
	key := normalizeKey(sportKey)
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	_, ok := r.profiles[key]
	return ok
}

// BuiltinKeys lists the canonical keys of the built-in sport table.
func BuiltinKeys() []string {
	keys := make([]string, 0, len(builtinProfiles))
	for _, p := range builtinProfiles {
		keys = append(keys, p.Key)
	}
	return keys
}

func normalizeKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	return key
}
