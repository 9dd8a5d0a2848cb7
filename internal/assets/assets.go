package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ErrEmptyRef is returned for a blank asset reference
var ErrEmptyRef = errors.New("empty asset reference")

// Image is a decoded asset
type Image struct {
	Ref    string
	Format string
	Img    image.Image
}

// Width and Height report the pixel size of the decoded image
func (i *Image) Width() int  { return i.Img.Bounds().Dx() }
func (i *Image) Height() int { return i.Img.Bounds().Dy() }

// Loader resolves asset references such as "/images/a.jpg" against a
// filesystem root
type Loader struct {
	fsys fs.FS
}

// NewLoader reads assets from fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader reads assets from a directory on disk
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// Load opens and decodes the referenced image
func (l *Loader) Load(ref string) (*Image, error) {
	name, err := resolve(ref)
	if err != nil {
		return nil, err
	}
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", ref, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", ref, err)
	}
	return &Image{Ref: ref, Format: format, Img: img}, nil
}

// Stat reports whether the referenced file exists without decoding it
func (l *Loader) Stat(ref string) error {
	name, err := resolve(ref)
	if err != nil {
		return err
	}
	_, err = fs.Stat(l.fsys, name)
	return err
}

// resolve maps a page-style reference onto an fs.FS path
func resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrEmptyRef
	}
	name := path.Clean(strings.TrimPrefix(ref, "/"))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid asset reference %q", ref)
	}
	return name, nil
}
