package bodydispatcher

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sort"

	"github.com/ethereum/go-ethereum/log"

	"github.com/smallken/geometric-bodies/body"
	"github.com/smallken/geometric-bodies/config"
)

var (
	ErrDimensionCount = errors.New("wrong number of dimensions")
	ErrReleased       = errors.New("bodies already released")
	ErrNotOwnable     = errors.New("body cannot be separately allocated")
)

type BodyKind = string

type Factory func(dims []float64) (body.Body, error)

type BodyDispatcher struct {
	// map: "sphere"---> NewSphere
	registry map[BodyKind]Factory
	bodies   []body.Body
	// positions in bodies that were allocated for this dispatcher
	owned    []int
	released bool
}

func newSphere(dims []float64) (body.Body, error) {
	if len(dims) != 1 {
		return nil, fmt.Errorf("sphere wants 1 dimension, got %d: %w", len(dims), ErrDimensionCount)
	}
	if err := body.ValidateSphere(dims[0]); err != nil {
		log.Warn("clamping sphere", "err", err)
	}
	return body.NewSphere(dims[0]), nil
}

func newPyramid(dims []float64) (body.Body, error) {
	if len(dims) != 3 {
		return nil, fmt.Errorf("pyramid wants 3 dimensions, got %d: %w", len(dims), ErrDimensionCount)
	}
	if err := body.ValidatePyramid(dims[0], dims[1], dims[2]); err != nil {
		log.Warn("resetting pyramid to unit dimensions", "err", err)
	}
	return body.NewPyramid(dims[0], dims[1], dims[2]), nil
}

// own moves b into a fresh allocation that only this dispatcher references.
// ok is false when b is not a value it knows how to copy.
func own(b body.Body) (owned body.Body, ok bool) {
	switch v := b.(type) {
	case body.Sphere:
		return &v, true
	case body.Pyramid:
		return &v, true
	}
	return nil, false
}

func New(conf *config.Config) (*BodyDispatcher, error) {
	return newWithRegistry(conf, map[BodyKind]Factory{
		body.KindSphere:  newSphere,
		body.KindPyramid: newPyramid,
	})
}

func newWithRegistry(conf *config.Config, registry map[BodyKind]Factory) (*BodyDispatcher, error) {
	dispatcher := BodyDispatcher{registry: registry}

	supportedKinds := dispatcher.SupportedKinds()

	for i, c := range conf.Bodies {
		factory, ok := dispatcher.registry[c.Kind]
		if !ok {
			log.Error(config.UnsupportedKind, "index", i, "kind", c.Kind, "supportedKinds", supportedKinds)
			continue
		}
		b, err := factory(c.Dimensions)
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", i, c.Kind, err)
		}
		if c.Owned {
			owned, ok := own(b)
			if !ok {
				return nil, fmt.Errorf("body %d (%s): %T: %w", i, c.Kind, b, ErrNotOwnable)
			}
			b = owned
			dispatcher.owned = append(dispatcher.owned, len(dispatcher.bodies))
		}
		dispatcher.bodies = append(dispatcher.bodies, b)
		log.Debug("body registered", "index", i, "kind", c.Kind, "owned", c.Owned)
	}
	return &dispatcher, nil
}

func (d *BodyDispatcher) SupportedKinds() []string {
	kinds := make([]string, 0, len(d.registry))
	for k := range d.registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (d *BodyDispatcher) Bodies() []body.Body {
	return append([]body.Body(nil), d.bodies...)
}

func (d *BodyDispatcher) Len() int {
	return len(d.bodies)
}

func (d *BodyDispatcher) Owned() int {
	return len(d.owned)
}

// Dispatch calls fn for every body in insertion order and stops at the
// first error. A panic in fn is returned as an error.
func (d *BodyDispatcher) Dispatch(fn func(body.Body) error) (err error) {
	if d.released {
		return ErrReleased
	}
	defer func() {
		if e := recover(); e != nil {
			log.Error("panic error", "msg", e)
			log.Debug(string(debug.Stack()))
			err = fmt.Errorf("panic err: %v", e)
		}
	}()

	for i, b := range d.bodies {
		if err = fn(b); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
	}
	log.Debug("Finish dispatching", "bodies", len(d.bodies))
	return nil
}

// Close drops every owned body and the collection itself. It returns how
// many owned bodies were released; later calls release nothing.
func (d *BodyDispatcher) Close() int {
	if d.released {
		return 0
	}
	for _, i := range d.owned {
		d.bodies[i] = nil
	}
	released := len(d.owned)
	d.owned = nil
	d.bodies = nil
	d.released = true
	log.Debug("bodies released", "owned", released)
	return released
}
