package export

import (
	"fmt"
	"strings"
	"testing"

	"ship-editor/internal/catalog"
	"ship-editor/internal/editor"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sidewinder", "sidewinder"},
		{"Cobra Mk III", "cobraMkIII"},
		{"Fer-de-Lance", "ferDeLance"},
		{"", "design"},
		{"---", "design"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := identifier(tt.name); got != tt.want {
				t.Errorf("identifier(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestGoSourceRoundTripsLoadedDesign(t *testing.T) {
	s := editor.NewSession()
	if err := s.LoadDesign("Sidewinder"); err != nil {
		t.Fatalf("loading Sidewinder: %v", err)
	}
	def := catalog.Get("Sidewinder")
	src := GoSource("Sidewinder", def.Size, s.Shapes())

	// Every catalog vertex must appear verbatim: loading then exporting
	// preserves the geometry exactly.
	for i, v := range def.VertexData {
		want := fmt.Sprintf("{X: %g, Y: %g},", v.X, v.Y)
		if !strings.Contains(src, want) {
			t.Errorf("vertex %d missing from output: want %q in:\n%s", i, want, src)
		}
	}
	if got := strings.Count(src, "{X: "); got != len(def.VertexData) {
		t.Errorf("output has %d vertices, want %d", got, len(def.VertexData))
	}
	want := fmt.Sprintf("colorutil.NewRGB(%d, %d, %d)", def.FillColor.R, def.FillColor.G, def.FillColor.B)
	if !strings.Contains(src, want) {
		t.Errorf("fill color missing: want %q", want)
	}
}

func TestGoSourceMultipleLayers(t *testing.T) {
	s := editor.NewSession()
	s.LoadBlank()
	s.AddLayer()
	src := GoSource("custom hull", 30, s.Shapes())

	if !strings.HasPrefix(src, "// custom hull, nominal size 30. Bounds 1 x 1, centered at (0, 0).\n") {
		t.Errorf("unexpected header:\n%s", src)
	}
	if !strings.Contains(src, "var customHull = []*editor.Layer{") {
		t.Errorf("unexpected declaration:\n%s", src)
	}
	if got := strings.Count(src, "Vertices: []geometry.Point2D{"); got != 2 {
		t.Errorf("output has %d layers, want 2", got)
	}
}
