package bootstrap

import (
	"fmt"
	"strings"
)

var nameReplacer = strings.NewReplacer(" ", "_", "-", "_")

// SanitizeProjectName replaces spaces and hyphens with underscores.
func SanitizeProjectName(name string) string {
	return nameReplacer.Replace(strings.TrimSpace(name))
}

// ValidateProjectName rejects names that cannot be used as a single directory
// component. It expects an already sanitized name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProjectName)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q must not be a path", ErrInvalidProjectName, name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidProjectName, name)
	}
	return nil
}

// ProjectRequest is a validated, sanitized bootstrap request.
type ProjectRequest struct {
	Name     string
	Language LanguageSpec
}

// NewProjectRequest sanitizes name and resolves language against r.
func NewProjectRequest(r *Registry, name, language string) (ProjectRequest, error) {
	spec, err := r.Lookup(language)
	if err != nil {
		return ProjectRequest{}, err
	}
	name = SanitizeProjectName(name)
	if err := ValidateProjectName(name); err != nil {
		return ProjectRequest{}, err
	}
	return ProjectRequest{Name: name, Language: spec}, nil
}
