package animations

import (
	"errors"
	"fmt"

	"github.com/automoto/kyra-copper/logger"
	"go.uber.org/zap"
)

type entry struct {
	sheets []Sheet
	states int
	set    *Set
}

// Library owns the animation sets of every character kind. Each kind is
// built at most once and every instance of that kind shares the result.
type Library struct {
	src   TextureSource
	kinds map[string]*entry
	order []string
}

func NewLibrary(src TextureSource) *Library {
	return &Library{
		src:   src,
		kinds: make(map[string]*entry),
	}
}

// Register declares the table for a kind. Registering a kind that is already
// known is ignored.
func (l *Library) Register(kind string, sheets []Sheet, states int) {
	if _, ok := l.kinds[kind]; ok {
		return
	}
	l.kinds[kind] = &entry{sheets: sheets, states: states}
	l.order = append(l.order, kind)
}

// Build constructs the set for kind if it has not been built yet and returns
// it. Later calls return the same set.
func (l *Library) Build(kind string) (*Set, error) {
	e, ok := l.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("animations: unknown character %q", kind)
	}
	if e.set != nil {
		return e.set, nil
	}
	set, err := Build(l.src, e.sheets, e.states)
	if err != nil {
		return nil, fmt.Errorf("animations: build %s: %w", kind, err)
	}
	e.set = set
	logger.Log.Info("animation set built", zap.String("character", kind), zap.Int("clips", set.Len()))
	return set, nil
}

// BuildAll tries every registered kind, so one broken table does not hold
// back the others. The errors of all failed kinds are joined.
func (l *Library) BuildAll() error {
	var errs []error
	for _, kind := range l.order {
		if _, err := l.Build(kind); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Kinds lists the registered kinds in registration order.
func (l *Library) Kinds() []string {
	return l.order
}

// Get returns the built set for kind. Until it is built the result is nil,
// which behaves as an empty set.
func (l *Library) Get(kind string) *Set {
	if e, ok := l.kinds[kind]; ok {
		return e.set
	}
	return nil
}

// Ready reports whether kind has been built and all its textures have
// loaded.
func (l *Library) Ready(kind string) bool {
	set := l.Get(kind)
	if set.Empty() {
		return false
	}
	for i := range set.clips {
		if !set.clips[i].Atlas.Ready() {
			return false
		}
	}
	return true
}
