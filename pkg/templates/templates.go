// Package templates embeds the starter files copied into new projects. Each
// language has a directory named after LanguageSpec.Name holding
// template.<ext>.
//
// The files live under _store, which the go tool skips when listing packages.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:_store
var store embed.FS

// FS is the template store rooted at the language directories.
var FS = mustSub(store, "_store")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
