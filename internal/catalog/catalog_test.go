package catalog

import (
	"testing"

	"ship-editor/pkg/geometry"
)

func TestAllRegisteredDesignsValidate(t *testing.T) {
	names := Names()
	if len(names) < 30 {
		t.Fatalf("expected a full catalog, got %d designs", len(names))
	}
	for _, name := range names {
		d := Get(name)
		if d == nil {
			t.Fatalf("Names() listed %q but Get returned nil", name)
		}
		if err := d.Validate(); err != nil {
			t.Errorf("design %q failed validation: %v", name, err)
		}
	}
}

func TestSidewinderVertexCount(t *testing.T) {
	d := Get("Sidewinder")
	if d == nil {
		t.Fatal("Sidewinder missing from catalog")
	}
	if got := len(d.VertexData); got != 4 {
		t.Fatalf("Sidewinder vertex count = %d, want 4", got)
	}
}

func TestProceduralDesignNotEditable(t *testing.T) {
	var found bool
	for _, name := range Names() {
		d := Get(name)
		if d.Kind != KindProcedural {
			continue
		}
		found = true
		if d.Editable() {
			t.Errorf("procedural design %q reports editable", name)
		}
		if len(d.VertexData) != 0 {
			t.Errorf("procedural design %q carries vertex data", name)
		}
	}
	if !found {
		t.Fatal("catalog has no procedural design")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr bool
	}{
		{
			name: "valid polygonal",
			def: Definition{
				Name: "test", Size: 30,
				VertexData: []geometry.Point2D{{X: 0, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}},
			},
		},
		{
			name:    "missing name",
			def:     Definition{Size: 30, VertexData: []geometry.Point2D{{}, {}, {}}},
			wantErr: true,
		},
		{
			name:    "zero size",
			def:     Definition{Name: "test", VertexData: []geometry.Point2D{{}, {}, {}}},
			wantErr: true,
		},
		{
			name:    "too few vertices",
			def:     Definition{Name: "test", Size: 30, VertexData: []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			wantErr: true,
		},
		{
			name:    "procedural with vertices",
			def:     Definition{Name: "test", Kind: KindProcedural, Size: 30, VertexData: []geometry.Point2D{{}, {}, {}}},
			wantErr: true,
		},
		{
			name: "valid procedural",
			def:  Definition{Name: "test", Kind: KindProcedural, Size: 30},
		},
		{
			name: "negative stroke",
			def: Definition{
				Name: "test", Size: 30, StrokeW: -0.1,
				VertexData: []geometry.Point2D{{X: 0, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaxSize(t *testing.T) {
	max := MaxSize()
	if max < FallbackSize {
		t.Fatalf("MaxSize() = %v, below fallback %v", max, FallbackSize)
	}
	for _, name := range Names() {
		if d := Get(name); d.Size > max {
			t.Errorf("design %q size %v exceeds MaxSize() %v", name, d.Size, max)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if d := Get("no-such-design"); d != nil {
		t.Fatalf("Get(unknown) = %v, want nil", d)
	}
}

func TestKindString(t *testing.T) {
	if KindPolygonal.String() != "Polygonal" || KindProcedural.String() != "Procedural" {
		t.Error("unexpected Kind string values")
	}
	if Kind(99).String() != "Unknown" {
		t.Error("out-of-range Kind should stringify as Unknown")
	}
}
