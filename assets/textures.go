package assets

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Loader reads files from an asset bundle and caches decoded images.
type Loader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// ReadFile returns the raw bytes of a bundled file.
func (l *Loader) ReadFile(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	data, err := l.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

var textures = NewLoader(FS)

// GetImage returns a cached texture from the embedded bundle.
func GetImage(path string) (*ebiten.Image, error) {
	return textures.LoadImage(path)
}
