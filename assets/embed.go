package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:data
var bundle embed.FS

// FS is the embedded asset bundle rooted at the data directory.
var FS fs.FS = mustSub(bundle, "data")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
