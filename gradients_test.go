package svg

import (
	"strings"
	"testing"
)

func TestPaintRegistryDedup(t *testing.T) {
	r := NewPaintRegistry("p-", nil)
	a := NewTwoColorGradient(0, 0, Red, 100, 0, Blue)
	b := NewTwoColorGradient(0, 0, Red, 100, 0, Blue)

	ida, idb := r.Register(a), r.Register(b)
	if ida != idb {
		t.Errorf("value-equal gradients got ids %q and %q", ida, idb)
	}
	if ida != "p-gp0" {
		t.Errorf("id = %q, want p-gp0", ida)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	b.SetExtend(ExtendReflect)
	if id := r.Register(b); id == ida {
		t.Error("changing the extend mode must produce a new definition")
	}
}

func TestPaintRegistryNamespaces(t *testing.T) {
	r := NewPaintRegistry("", nil)
	multi := NewLinearGradient(0, 0, 10, 10).
		AddColorStop(0, Red).
		AddColorStop(0.5, Green).
		AddColorStop(1, Blue)
	radial := NewRadialGradient(5, 5, 5).AddColorStop(0, White).AddColorStop(1, Black)

	tests := []struct {
		p    Paint
		want string
	}{
		{NewTwoColorGradient(0, 0, Red, 1, 0, Blue), "gp0"},
		{multi, "lgp0"},
		{radial, "rgp0"},
		{NewTwoColorGradient(0, 0, Red, 2, 0, Blue), "gp1"},
		{Solid{Color: Red}, ""},
		{(*LinearGradient)(nil), ""},
	}
	for _, tt := range tests {
		if got := r.Register(tt.p); got != tt.want {
			t.Errorf("Register(%T) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPaintRegistryDefinitions(t *testing.T) {
	r := NewPaintRegistry("d-", nil)
	r.Register(NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, Red).
		AddColorStop(0.25, Blue.WithAlpha(0.5)).
		AddColorStop(1, Green).
		SetExtend(ExtendRepeat))
	r.Register(NewRadialGradient(50, 50, 40).
		SetFocus(40, 40).
		AddColorStop(0, White).
		AddColorStop(1, Black))

	got := r.Definitions()
	for _, want := range []string{
		`<linearGradient id="d-lgp0" x1="0" y1="0" x2="100" y2="0" gradientUnits="userSpaceOnUse" spreadMethod="repeat">`,
		`<stop offset="0%" stop-color="rgb(255,0,0)"/>`,
		`<stop offset="25%" stop-color="rgb(0,0,255)" stop-opacity="0.5"/>`,
		`</linearGradient>`,
		`<radialGradient id="d-rgp0" cx="50" cy="50" r="40" fx="40" fy="40" gradientUnits="userSpaceOnUse">`,
		`</radialGradient>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Definitions() missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, `spreadMethod="pad"`) {
		t.Error("pad spread method should be omitted")
	}
	if i, j := strings.Index(got, "linearGradient"), strings.Index(got, "radialGradient"); i > j {
		t.Error("definitions are not in registration order")
	}
}
