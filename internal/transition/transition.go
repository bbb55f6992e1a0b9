// Package transition drives the wipe effects shown between scenes.
//
// A transition closes over the current scene, reports when it is fully
// closed so the caller can swap scenes underneath, and opens again.
package transition

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/dimensions/internal/core"
)

// Kind names a transition visual.
type Kind string

const (
	Square Kind = "square"
	Circle Kind = "circle"
	Fade   Kind = "fade"
)

// Status is the derived state of a transition.
type Status int

const (
	Ready Status = iota
	Closing
	Closed
	Opening
	Open
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Spec sets how far a transition travels and how fast.
type Spec struct {
	Size float64 // progress at which the transition is closed
	Rate float64 // progress change per tick
}

// DefaultSpecs are the tunings the game ships with.
var DefaultSpecs = map[Kind]Spec{
	Square: {Size: 75, Rate: 5},
	Circle: {Size: 50, Rate: 2.5},
	Fade:   {Size: 255, Rate: 16},
}

// ParseKind validates a transition name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := DefaultSpecs[k]; !ok {
		return "", fmt.Errorf("transition: unknown kind %q", s)
	}
	return k, nil
}

// Kinds returns every known kind, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(DefaultSpecs))
	for k := range DefaultSpecs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Transition is one wipe in flight.
type Transition struct {
	kind     Kind
	spec     Spec
	k        float64
	progress float64
}

func newTransition(kind Kind, spec Spec) *Transition {
	return &Transition{kind: kind, spec: spec}
}

// Status derives the state from the drive direction and progress.
func (t *Transition) Status() Status {
	switch {
	case t.k > 0:
		if t.progress >= t.spec.Size {
			return Closed
		}
		return Closing
	case t.k < 0:
		if t.progress <= 0 {
			return Open
		}
		return Opening
	default:
		return Ready
	}
}

func (t *Transition) update() {
	t.progress = core.ClampF(t.progress+t.k, 0, t.spec.Size)
}

func (t *Transition) draw(r core.Renderer) {
	if t.progress <= 0 {
		return
	}
	b := r.Bounds()
	size := t.spec.Size
	switch t.kind {
	case Square:
		off := size/2 - t.progress/2
		for y := b.Y; y <= b.Bottom(); y += size {
			for x := b.X; x <= b.Right(); x += size {
				cell := core.Box{X: x + off, Y: y + off, W: t.progress, H: t.progress}
				r.Rect(cell, core.ColorBlack, 0)
				r.Rect(cell, core.ColorWhite, 2)
			}
		}
	case Circle:
		rad := t.progress * 0.55
		for y := b.Y; y <= b.Bottom(); y += size {
			for x := b.X; x <= b.Right(); x += size {
				r.Circle(core.V(x, y), rad, core.ColorBlack, 0)
				r.Circle(core.V(x, y), rad, core.ColorWhite, 2)
			}
		}
	case Fade:
		r.Shade(t.progress)
	}
}
