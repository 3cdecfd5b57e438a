package recording

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"testing"

	"github.com/gogpu/svg"
)

// mockBackend logs every call it receives.
type mockBackend struct {
	name   string
	width  float64
	height float64
	calls  []string
	shapes []svg.Shape
	paints []svg.Paint
	// failOn makes the named call return errMock.
	failOn string
}

var errMock = errors.New("mock failure")

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) log(call string) error {
	b.calls = append(b.calls, call)
	if call == b.failOn {
		return errMock
	}
	return nil
}

func (b *mockBackend) Begin(width, height float64) error {
	b.width, b.height = width, height
	return b.log("Begin")
}

func (b *mockBackend) End() error { return b.log("End") }
func (b *mockBackend) Save()      { _ = b.log("Save") }
func (b *mockBackend) Restore()   { _ = b.log("Restore") }

func (b *mockBackend) SetTransform(m svg.Matrix) {
	_ = b.log(fmt.Sprintf("SetTransform %v %v %v %v %v %v", m.A, m.B, m.C, m.D, m.E, m.F))
}

func (b *mockBackend) SetClip(s svg.Shape) {
	b.shapes = append(b.shapes, s)
	if s == nil {
		_ = b.log("SetClip nil")
		return
	}
	_ = b.log("SetClip")
}

func (b *mockBackend) Clip(s svg.Shape) {
	b.shapes = append(b.shapes, s)
	_ = b.log("Clip")
}

func (b *mockBackend) SetPaint(p svg.Paint) {
	b.paints = append(b.paints, p)
	_ = b.log("SetPaint")
}

func (b *mockBackend) SetStroke(s svg.Stroke) error {
	return b.log(fmt.Sprintf("SetStroke %v", s.Width))
}

func (b *mockBackend) SetCustomStroke(svg.Outliner) error { return b.log("SetCustomStroke") }
func (b *mockBackend) SetFont(f svg.Font)                 { _ = b.log("SetFont " + f.Family) }
func (b *mockBackend) SetAlpha(a float64) error           { return b.log(fmt.Sprintf("SetAlpha %v", a)) }
func (b *mockBackend) SetBackground(svg.RGBA)             { _ = b.log("SetBackground") }
func (b *mockBackend) SetRenderingHints(svg.RenderingHints) {
	_ = b.log("SetRenderingHints")
}
func (b *mockBackend) SetExtraStyle(css string) error { return b.log("SetExtraStyle " + css) }
func (b *mockBackend) SetNextID(id string)            { _ = b.log("SetNextID " + id) }
func (b *mockBackend) BeginGroup(id string) error     { return b.log("BeginGroup " + id) }
func (b *mockBackend) EndGroup() error                { return b.log("EndGroup") }

func (b *mockBackend) Draw(s svg.Shape) error {
	b.shapes = append(b.shapes, s)
	return b.log("Draw")
}

func (b *mockBackend) Fill(s svg.Shape) error {
	b.shapes = append(b.shapes, s)
	return b.log("Fill")
}

func (b *mockBackend) ClearRect(x, y, w, h float64) error {
	return b.log(fmt.Sprintf("ClearRect %v %v %v %v", x, y, w, h))
}

func (b *mockBackend) DrawString(s string, x, y, ax, ay float64) error {
	return b.log(fmt.Sprintf("DrawString %s %v %v %v %v", s, x, y, ax, ay))
}

func (b *mockBackend) DrawImage(_ image.Image, src image.Rectangle, x, y, w, h float64) error {
	return b.log(fmt.Sprintf("DrawImage %v %v %v %v %v", src, x, y, w, h))
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func mockFactory(name string) BackendFactory {
	return func(...svg.Option) Backend { return newMockBackend(name) }
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", mockFactory("test"))

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendForwardsOptions(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	var got int
	Register("opts", func(opts ...svg.Option) Backend {
		got = len(opts)
		return newMockBackend("opts")
	})
	if _, err := NewBackend("opts", svg.WithIDPrefix("a-"), svg.WithPrecision(2)); err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("factory received %d options, want 2", got)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if _, err := NewBackend("unknown"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestMustBackendPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown backend")
		}
	}()
	MustBackend("unknown")
}

func TestRegisterNilFactory(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil factory")
		}
	}()
	Register("nil", nil)
}

func TestRegisterDuplicate(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("dup", mockFactory("dup"))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()
	Register("dup", mockFactory("dup"))
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("temp", mockFactory("temp"))
	if !IsRegistered("temp") {
		t.Error("backend should be registered")
	}
	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("backend should not be registered after Unregister")
	}

	// Unregister non-existent should not panic
	Unregister("nonexistent")
}

func TestBackends(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if got := Backends(); len(got) != 0 {
		t.Fatalf("Backends() = %v, want empty", got)
	}

	Register("charlie", mockFactory("c"))
	Register("alpha", mockFactory("a"))
	Register("bravo", mockFactory("b"))

	want := []string{"alpha", "bravo", "charlie"}
	if got := Backends(); !slices.Equal(got, want) {
		t.Errorf("Backends() = %v, want %v", got, want)
	}
}
