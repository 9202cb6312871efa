package animations

import (
	"errors"
	"fmt"

	"github.com/automoto/kyra-copper/assets"
)

var (
	ErrStateCountMismatch = errors.New("animations: sheet table does not cover every state")
	ErrEmptySheet         = errors.New("animations: sheet has no frames")
)

// Sheet is one row of a character's animation table: a single-row sprite
// sheet of Frames cells.
type Sheet struct {
	Texture    string
	Frames     int
	CellWidth  float64
	CellHeight float64
}

// Clip is a contiguous frame range over a texture atlas.
type Clip struct {
	First int
	Last  int
	Atlas *assets.Atlas
}

// Contains reports whether frame lies inside the clip.
func (c *Clip) Contains(frame int) bool {
	return frame >= c.First && frame <= c.Last
}

// Set holds one clip per character state, indexed by the state's ordinal.
// A Set is never modified after Build returns it.
type Set struct {
	clips []Clip
}

// Len is the number of clips. A nil Set is empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.clips)
}

// Empty reports whether the set has no clips yet.
func (s *Set) Empty() bool {
	return s.Len() == 0
}

// Clip returns the clip for a state ordinal.
func (s *Set) Clip(state int) (*Clip, bool) {
	if state < 0 || state >= s.Len() {
		return nil, false
	}
	return &s.clips[state], true
}

// TextureSource hands out texture handles by file name. Handles may still be
// pending when returned.
type TextureSource interface {
	Load(name string) *assets.Texture
}

// Build creates one clip per sheet, in table order, with frames [0, N-1].
// The table must have exactly one row per state so that a state's ordinal
// can index the set.
func Build(src TextureSource, sheets []Sheet, states int) (*Set, error) {
	if len(sheets) != states {
		return nil, fmt.Errorf("%w: %d sheets for %d states", ErrStateCountMismatch, len(sheets), states)
	}

	set := &Set{clips: make([]Clip, 0, len(sheets))}
	for i, sh := range sheets {
		if sh.Frames <= 0 {
			return nil, fmt.Errorf("%w: row %d (%s)", ErrEmptySheet, i, sh.Texture)
		}
		tex := src.Load(sh.Texture)
		set.clips = append(set.clips, Clip{
			First: 0,
			Last:  sh.Frames - 1,
			Atlas: assets.NewAtlas(tex, sh.CellWidth, sh.CellHeight, sh.Frames, 1),
		})
	}
	return set, nil
}
