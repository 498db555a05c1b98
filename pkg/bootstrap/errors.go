package bootstrap

import "errors"

var (
	// ErrUnsupportedLanguage is returned before any subprocess runs when the
	// requested language is not in the registry.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrInvalidProjectName is returned for names that are empty or path-like
	// after sanitizing.
	ErrInvalidProjectName = errors.New("invalid project name")
	// ErrToolchainUnavailable means the probe could not launch the toolchain.
	// It accompanies ErrInstallationDeclined when the user refuses the prompt.
	ErrToolchainUnavailable = errors.New("toolchain unavailable")
	// ErrInstallationDeclined means the user refused to install a missing toolchain.
	ErrInstallationDeclined = errors.New("installation declined")
	// ErrScaffoldFailed wraps a failed native scaffold command.
	ErrScaffoldFailed = errors.New("scaffold failed")
	// ErrTemplateCopyFailed wraps the I/O error that stopped the template copy.
	ErrTemplateCopyFailed = errors.New("template copy failed")
)
