package bootstrap

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

const (
	DefaultProjectName = "my_project"
	ProjectNamePrompt  = "What is the name of your project?"
	LanguagePrompt     = "Choose a programming language:"
)

// handleProjectNamePrompt asks for a project name until a valid one is given.
func handleProjectNamePrompt() (string, error) {
	promptText := fmt.Sprintf("%s (%s)", ProjectNamePrompt, DefaultProjectName)
	name, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(promptText).
		Show()
	if err != nil {
		return "", err
	}

	if name == "" {
		name = DefaultProjectName
	}

	name = SanitizeProjectName(name)
	if err := ValidateProjectName(name); err != nil {
		pterm.Warning.Printf("Invalid project name '%s': %v\n", name, err)
		pterm.Info.Println("Please provide a valid project name.")
		return handleProjectNamePrompt()
	}

	return name, nil
}

// PromptForProjectName returns the provided name, or prompts when it is empty
// or invalid. The returned name is sanitized.
func PromptForProjectName(provided string) (string, error) {
	if provided == "" {
		return handleProjectNamePrompt()
	}

	name := SanitizeProjectName(provided)
	if err := ValidateProjectName(name); err != nil {
		pterm.Warning.Printf("Invalid project name '%s': %v\n", provided, err)
		pterm.Info.Println("Please provide a valid project name.")
		return handleProjectNamePrompt()
	}

	return name, nil
}

// PromptForLanguage returns the language ID for provided, or lets the user
// pick one from r when nothing was provided. An unknown language is returned
// as an error, never re-prompted.
func PromptForLanguage(r *Registry, provided string) (string, error) {
	if provided != "" {
		spec, err := r.Lookup(provided)
		if err != nil {
			return "", err
		}
		return spec.ID, nil
	}

	options := lo.Map(r.All(), func(s LanguageSpec, _ int) string { return s.Name })
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(LanguagePrompt).
		Show()
	if err != nil {
		return "", err
	}
	spec, err := r.Lookup(choice)
	if err != nil {
		return "", err
	}
	return spec.ID, nil
}
