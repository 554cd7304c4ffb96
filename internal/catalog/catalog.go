// Package catalog provides the static registry of named base ship designs.
package catalog

import (
	"fmt"

	"ship-editor/pkg/colorutil"
	"ship-editor/pkg/geometry"
)

// Kind distinguishes editable polygonal designs from the procedural
// special case, which has no vertex data and cannot be edited.
type Kind int

const (
	KindPolygonal Kind = iota
	KindProcedural
)

func (k Kind) String() string {
	switch k {
	case KindPolygonal:
		return "Polygonal"
	case KindProcedural:
		return "Procedural"
	default:
		return "Unknown"
	}
}

// Stats holds display-only combat statistics for a design. The editor treats
// these as opaque pass-through metadata.
type Stats struct {
	Speed  int `json:"speed"`
	Turn   int `json:"turn"`
	Hull   int `json:"hull"`
	Shield int `json:"shield"`
}

// Definition is an immutable named base design: geometry, style, and
// descriptive metadata. The editor deep-copies vertex and style data into a
// fresh layer at load time; a Definition itself is never mutated.
type Definition struct {
	Name        string             `json:"name"`
	Kind        Kind               `json:"kind"`
	Size        float64            `json:"size"`
	VertexData  []geometry.Point2D `json:"vertexData,omitempty"`
	FillColor   colorutil.RGB      `json:"fillColor"`
	StrokeColor colorutil.RGB      `json:"strokeColor"`
	StrokeW     float64            `json:"strokeW"`
	Description string             `json:"description"`
	Stats       Stats              `json:"stats"`
}

// Editable reports whether the design can be loaded into the editor.
func (d *Definition) Editable() bool {
	return d.Kind == KindPolygonal
}

// Validate checks that the definition is structurally sound.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("design name is required")
	}
	if d.Size <= 0 {
		return fmt.Errorf("design %q: size must be positive", d.Name)
	}
	switch d.Kind {
	case KindPolygonal:
		if len(d.VertexData) < 3 {
			return fmt.Errorf("design %q: polygonal design needs at least 3 vertices, has %d",
				d.Name, len(d.VertexData))
		}
		for i, v := range d.VertexData {
			if !v.IsFinite() {
				return fmt.Errorf("design %q: vertex %d is not finite", d.Name, i)
			}
		}
		if d.StrokeW < 0 {
			return fmt.Errorf("design %q: stroke weight must be non-negative", d.Name)
		}
	case KindProcedural:
		if len(d.VertexData) != 0 {
			return fmt.Errorf("design %q: procedural design must not carry vertex data", d.Name)
		}
	default:
		return fmt.Errorf("design %q: unknown kind %d", d.Name, d.Kind)
	}
	return nil
}

// FallbackSize is the nominal size assumed for a freshly created blank
// design that has no catalog entry backing it.
const FallbackSize = 30.0

// Registry of known designs. Insertion order is preserved for UI listing.
var (
	registry = make(map[string]*Definition)
	ordered  []string
)

// Register adds a design to the registry. Duplicate or invalid definitions
// panic: the catalog is static data and a bad entry is a programming error.
func Register(d *Definition) {
	if err := d.Validate(); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	if _, exists := registry[d.Name]; exists {
		panic(fmt.Sprintf("catalog: duplicate design %q", d.Name))
	}
	registry[d.Name] = d
	ordered = append(ordered, d.Name)
}

// Get returns a design by name, or nil if unknown.
func Get(name string) *Definition {
	return registry[name]
}

// Names returns all registered design names in registration order.
func Names() []string {
	out := make([]string, len(ordered))
	copy(out, ordered)
	return out
}

// MaxSize returns the largest nominal size across the catalog. The zoom
// transform uses it as the reference scale for pixelsPerUnit.
func MaxSize() float64 {
	max := FallbackSize
	for _, d := range registry {
		if d.Size > max {
			max = d.Size
		}
	}
	return max
}
