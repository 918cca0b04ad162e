// Package optics models the optical instruments that can be placed on a grid
// and the law each one applies to a light ray that reaches it.
package optics

import "fmt"

// Kind identifies a device variant.
type Kind int

const (
	KindEmitter Kind = iota
	KindFlatMirror
	KindFlatLens
	KindFlatWall
	KindConcaveLens
	KindConvexLens
)

var kindNames = map[Kind]string{
	KindEmitter:     "emitter",
	KindFlatMirror:  "flat_mirror",
	KindFlatLens:    "flat_lens",
	KindFlatWall:    "flat_wall",
	KindConcaveLens: "concave_lens",
	KindConvexLens:  "convex_lens",
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	return []Kind{KindEmitter, KindFlatMirror, KindFlatLens, KindFlatWall, KindConcaveLens, KindConvexLens}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsFlat reports whether the footprint is a plain rectangle.
func (k Kind) IsFlat() bool {
	switch k {
	case KindEmitter, KindFlatMirror, KindFlatLens, KindFlatWall:
		return true
	}
	return false
}

// IsLens reports whether the device refracts.
func (k Kind) IsLens() bool {
	return k == KindFlatLens || k == KindConcaveLens || k == KindConvexLens
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown device kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown device kind %q", string(text))
}
