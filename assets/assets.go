package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/automoto/kyra-copper/logger"
	"go.uber.org/zap"
)

// LoadState tracks where a texture is in its load lifecycle.
type LoadState int

const (
	Pending LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Texture is a handle to an image file. Handles are handed out immediately
// and resolved later by Loader.Update, so callers must check Ready.
type Texture struct {
	name    string
	state   LoadState
	img     image.Image
	version int // bumped on every successful (re)load
	err     error
	warned  bool
}

func (t *Texture) Name() string     { return t.name }
func (t *Texture) State() LoadState { return t.state }
func (t *Texture) Ready() bool      { return t != nil && t.state == Loaded }
func (t *Texture) Err() error       { return t.err }
func (t *Texture) Version() int     { return t.version }

// Image returns the decoded image, or nil while the texture is not ready.
func (t *Texture) Image() image.Image {
	if !t.Ready() {
		return nil
	}
	return t.img
}

// Atlas slices a texture into a grid of equally sized cells.
type Atlas struct {
	Texture    *Texture
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
}

// NewAtlas lays a columns x rows grid of cellWidth x cellHeight cells over tex.
func NewAtlas(tex *Texture, cellWidth, cellHeight float64, columns, rows int) *Atlas {
	return &Atlas{
		Texture:    tex,
		CellWidth:  int(cellWidth),
		CellHeight: int(cellHeight),
		Columns:    columns,
		Rows:       rows,
	}
}

// Ready reports whether the atlas texture has been loaded.
func (a *Atlas) Ready() bool {
	return a != nil && a.Texture.Ready()
}

// Len is the number of cells in the atlas.
func (a *Atlas) Len() int {
	return a.Columns * a.Rows
}

// Rect returns the source rectangle of cell i, row-major.
func (a *Atlas) Rect(i int) (image.Rectangle, bool) {
	if a == nil || a.Columns <= 0 || i < 0 || i >= a.Len() {
		return image.Rectangle{}, false
	}
	sx := (i % a.Columns) * a.CellWidth
	sy := (i / a.Columns) * a.CellHeight
	return image.Rect(sx, sy, sx+a.CellWidth, sy+a.CellHeight), true
}

// Loader resolves texture handles from a file system. A handle is created
// once per file name; repeated Load calls return the same handle.
type Loader struct {
	fsys  fs.FS
	cache map[string]*Texture
	order []string
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Texture),
	}
}

// Load returns the handle for name, registering it as pending on first use.
// It never blocks on I/O; the file is read on the next Update.
func (l *Loader) Load(name string) *Texture {
	if tex, ok := l.cache[name]; ok {
		return tex
	}
	tex := &Texture{name: name, state: Pending}
	l.cache[name] = tex
	l.order = append(l.order, name)
	return tex
}

// Update tries to resolve every pending texture and returns how many were
// loaded. Missing files stay pending so they can appear later; files that
// fail to decode are marked failed.
func (l *Loader) Update() int {
	loaded := 0
	for _, name := range l.order {
		tex := l.cache[name]
		if tex.state != Pending {
			continue
		}
		if l.resolve(tex) {
			loaded++
		}
	}
	return loaded
}

// Reload marks a known texture as pending again. Unknown names are ignored.
func (l *Loader) Reload(name string) bool {
	tex, ok := l.cache[name]
	if !ok {
		return false
	}
	tex.state = Pending
	tex.err = nil
	tex.warned = false
	return true
}

// Pending is the number of textures not yet loaded or failed.
func (l *Loader) Pending() int {
	n := 0
	for _, tex := range l.cache {
		if tex.state == Pending {
			n++
		}
	}
	return n
}

func (l *Loader) resolve(tex *Texture) bool {
	data, err := fs.ReadFile(l.fsys, tex.name)
	if err != nil {
		tex.err = err
		if errors.Is(err, fs.ErrNotExist) {
			if !tex.warned {
				logger.Log.Warn("texture not found, keeping it pending", zap.String("texture", tex.name))
				tex.warned = true
			}
			return false
		}
		tex.state = Failed
		logger.Log.Error("failed to read texture", zap.String("texture", tex.name), zap.Error(err))
		return false
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		tex.state = Failed
		tex.err = fmt.Errorf("decode %s: %w", tex.name, err)
		logger.Log.Error("failed to decode texture", zap.String("texture", tex.name), zap.Error(err))
		return false
	}

	tex.img = img
	tex.state = Loaded
	tex.err = nil
	tex.version++
	logger.Log.Debug("texture loaded",
		zap.String("texture", tex.name),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return true
}
