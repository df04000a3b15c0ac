// Package profile holds the MRDF field tables and the registry that selects between them.
package profile

import (
	"fmt"

	"github.com/joshuapare/mrdfkit/pkg/types"
)

// Registry is an ordered set of profiles. The first registered profile is the
// default. A Registry is not safe for concurrent mutation.
type Registry struct {
	profiles []types.Profile
	index    map[string]int
}

// NewRegistry returns a registry holding ps in order.
func NewRegistry(ps ...types.Profile) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(ps))}
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Builtin returns a fresh registry holding the Stats and Physics profiles.
func Builtin() *Registry {
	r, err := NewRegistry(Stats, Physics)
	if err != nil {
		panic(err)
	}
	return r
}

// Register appends p. Keys must be unique.
func (r *Registry) Register(p types.Profile) error {
	if p.IsZero() {
		return &types.Error{Kind: types.ErrKindConfig, Msg: "cannot register an empty profile", Err: types.ErrInvalidProfile}
	}
	if _, dup := r.index[p.Key()]; dup {
		return &types.Error{
			Kind: types.ErrKindConfig,
			Msg:  fmt.Sprintf("profile %q already registered", p.Key()),
			Err:  types.ErrInvalidProfile,
		}
	}
	r.index[p.Key()] = len(r.profiles)
	r.profiles = append(r.profiles, p)
	return nil
}

// Lookup returns the profile registered under key.
func (r *Registry) Lookup(key string) (types.Profile, bool) {
	i, ok := r.index[key]
	if !ok {
		return types.Profile{}, false
	}
	return r.profiles[i], true
}

// Resolve returns the profile for key, falling back to Default for unknown keys.
func (r *Registry) Resolve(key string) types.Profile {
	if p, ok := r.Lookup(key); ok {
		return p
	}
	return r.Default()
}

// ByLabel finds a profile by its display label.
func (r *Registry) ByLabel(label string) (types.Profile, bool) {
	for _, p := range r.profiles {
		if p.Label() == label {
			return p, true
		}
	}
	return types.Profile{}, false
}

// Default returns the first registered profile, or the zero Profile when empty.
func (r *Registry) Default() types.Profile {
	if len(r.profiles) == 0 {
		return types.Profile{}
	}
	return r.profiles[0]
}

// All returns the registered profiles in order.
func (r *Registry) All() []types.Profile {
	return append([]types.Profile(nil), r.profiles...)
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int { return len(r.profiles) }

// Next returns the profile registered after key, wrapping to the first.
func (r *Registry) Next(key string) types.Profile {
	if len(r.profiles) == 0 {
		return types.Profile{}
	}
	i, ok := r.index[key]
	if !ok {
		return r.profiles[0]
	}
	return r.profiles[(i+1)%len(r.profiles)]
}
