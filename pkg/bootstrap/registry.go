package bootstrap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// Registry is the fixed set of supported languages, indexed by identifier,
// canonical name and aliases (case-insensitive). It is read-only once built.
type Registry struct {
	specs []LanguageSpec
	index map[string]int
}

// NewRegistry builds a registry from specs. Keys must be unique across all
// identifiers, names and aliases.
func NewRegistry(specs ...LanguageSpec) (*Registry, error) {
	r := &Registry{
		specs: make([]LanguageSpec, 0, len(specs)),
		index: make(map[string]int),
	}
	for _, s := range specs {
		if s.ID == "" || s.Name == "" || s.Extension == "" {
			return nil, fmt.Errorf("language spec %q: id, name and extension are required", s.Name)
		}
		if s.Probe.Name == "" || s.Scaffold.Command.Name == "" {
			return nil, fmt.Errorf("language spec %q: probe and scaffold commands are required", s.ID)
		}
		for _, va := range s.Scaffold.VersionArgs {
			if _, err := semver.NewConstraint(va.Constraint); err != nil {
				return nil, fmt.Errorf("language spec %q: invalid version constraint %q: %w", s.ID, va.Constraint, err)
			}
		}
		keys := lo.Uniq(lo.Map(append([]string{s.ID, s.Name}, s.Aliases...), func(k string, _ int) string {
			return strings.ToLower(k)
		}))
		for _, k := range keys {
			if _, dup := r.index[k]; dup {
				return nil, fmt.Errorf("language key %q registered twice", k)
			}
			r.index[k] = len(r.specs)
		}
		r.specs = append(r.specs, s)
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for package-level tables known to be valid.
func MustNewRegistry(specs ...LanguageSpec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry holds every language lgc can bootstrap.
var DefaultRegistry = MustNewRegistry(Python, Julia, Go, Rust)

// Lookup resolves a user-supplied language by id, name or alias.
func (r *Registry) Lookup(language string) (LanguageSpec, error) {
	i, ok := r.index[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return LanguageSpec{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedLanguage, language, strings.Join(r.IDs(), ", "))
	}
	return r.specs[i], nil
}

// All returns the registered specs in registration order.
func (r *Registry) All() []LanguageSpec {
	return slices.Clone(r.specs)
}

// IDs returns the language identifiers in registration order.
func (r *Registry) IDs() []string {
	return lo.Map(r.specs, func(s LanguageSpec, _ int) string { return s.ID })
}
