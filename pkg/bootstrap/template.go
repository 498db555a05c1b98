package bootstrap

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TemplateInstaller copies a language's starter file into a scaffolded project.
type TemplateInstaller interface {
	InstallTemplate(name string, spec LanguageSpec) (string, error)
}

// StoreInstaller reads templates from Store, laid out as
// <Language.Name>/template.<ext>, and writes them to
// <WorkDir>/<name>/<name>/template.<ext>.
//
// The destination directory must already exist; it is produced by the
// scaffold step and never created here.
type StoreInstaller struct {
	Store   fs.FS
	WorkDir string
}

var _ TemplateInstaller = StoreInstaller{}

// TemplatePath is the location of spec's starter file inside a template store.
func TemplatePath(spec LanguageSpec) string {
	return path.Join(spec.Name, spec.TemplateFile())
}

// Destination is where InstallTemplate writes the starter file for project name.
func (s StoreInstaller) Destination(name string, spec LanguageSpec) string {
	return filepath.Join(s.WorkDir, name, name, spec.TemplateFile())
}

func (s StoreInstaller) InstallTemplate(name string, spec LanguageSpec) (string, error) {
	src := TemplatePath(spec)
	dest := s.Destination(name, spec)

	if err := copyTemplate(s.Store, src, dest); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateCopyFailed, err)
	}
	return dest, nil
}

func copyTemplate(store fs.FS, src, dest string) error {
	in, err := store.Open(src)
	if err != nil {
		return fmt.Errorf("template not found: %s: %w", src, err)
	}
	defer in.Close()

	destDir := filepath.Dir(dest)
	info, err := os.Stat(destDir)
	if err != nil {
		return fmt.Errorf("destination directory %s: %w", destDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %s is not a directory", destDir)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FILE_PERM)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}
