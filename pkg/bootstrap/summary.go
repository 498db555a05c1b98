package bootstrap

import (
	"path/filepath"
	"slices"

	"github.com/boyter/gocodewalker"
)

// ListProjectFiles returns the files under dir, relative to dir and sorted,
// honouring any .gitignore or .ignore files the scaffold tool generated.
func ListProjectFiles(dir string) ([]string, error) {
	queue := make(chan *gocodewalker.File, 64)
	walker := gocodewalker.NewFileWalker(dir, queue)

	errCh := make(chan error, 1)
	go func() {
		errCh <- walker.Start()
	}()

	var files []string
	for f := range queue {
		rel, err := filepath.Rel(dir, f.Location)
		if err != nil {
			rel = f.Location
		}
		files = append(files, filepath.ToSlash(rel))
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
