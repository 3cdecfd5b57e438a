package svg

import (
	"errors"
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{
			name:    "empty input returns nil",
			lengths: []float64{},
			wantNil: true,
		},
		{
			name:    "nil input returns nil",
			lengths: nil,
			wantNil: true,
		},
		{
			name:      "simple dash-gap pattern",
			lengths:   []float64{5, 3},
			wantArray: []float64{5, 3},
		},
		{
			name:      "odd length kept as given",
			lengths:   []float64{5},
			wantArray: []float64{5},
		},
		{
			name:      "complex pattern",
			lengths:   []float64{10, 5, 2, 5},
			wantArray: []float64{10, 5, 2, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDash(tt.lengths...)
			if tt.wantNil {
				if got != nil {
					t.Errorf("NewDash() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("NewDash() = nil, want non-nil")
			}
			if len(got.Array) != len(tt.wantArray) {
				t.Fatalf("NewDash().Array length = %d, want %d", len(got.Array), len(tt.wantArray))
			}
			for i, v := range got.Array {
				if v != tt.wantArray[i] {
					t.Errorf("NewDash().Array[%d] = %v, want %v", i, v, tt.wantArray[i])
				}
			}
			if got.Offset != 0 {
				t.Errorf("NewDash().Offset = %v, want 0", got.Offset)
			}
		})
	}
}

func TestNewDashCopiesInput(t *testing.T) {
	in := []float64{4, 2}
	d := NewDash(in...)
	in[0] = 100
	if d.Array[0] != 4 {
		t.Error("NewDash must not alias the caller's slice")
	}
}

func TestDash_WithOffset(t *testing.T) {
	if got := (*Dash)(nil).WithOffset(3); got != nil {
		t.Errorf("nil.WithOffset() = %v, want nil", got)
	}
	d := NewDash(5, 3)
	got := d.WithOffset(2)
	if got.Offset != 2 {
		t.Errorf("Offset = %v, want 2", got.Offset)
	}
	if d.Offset != 0 {
		t.Error("WithOffset modified the receiver")
	}
}

func TestDash_PatternLength(t *testing.T) {
	tests := []struct {
		name string
		dash *Dash
		want float64
	}{
		{"nil", nil, 0},
		{"pair", NewDash(5, 3), 8},
		{"four", NewDash(10, 5, 2, 5), 22},
		{"single", NewDash(5), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dash.PatternLength(); got != tt.want {
				t.Errorf("PatternLength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDash_IsDashed(t *testing.T) {
	tests := []struct {
		name string
		dash *Dash
		want bool
	}{
		{"nil", nil, false},
		{"empty", &Dash{}, false},
		{"zeros", NewDash(0, 0), false},
		{"pattern", NewDash(5, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dash.IsDashed(); got != tt.want {
				t.Errorf("IsDashed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDash_Clone(t *testing.T) {
	if (*Dash)(nil).Clone() != nil {
		t.Error("nil.Clone() should be nil")
	}
	d := NewDash(5, 3).WithOffset(1)
	c := d.Clone()
	c.Array[0] = 9
	c.Offset = 7
	if d.Array[0] != 5 || d.Offset != 1 {
		t.Errorf("Clone shares state: %+v", d)
	}
}

func TestDash_validate(t *testing.T) {
	tests := []struct {
		name    string
		dash    *Dash
		wantErr bool
	}{
		{"nil", nil, false},
		{"pattern", NewDash(5, 3), false},
		{"zero entry", NewDash(5, 0), false},
		{"negative", NewDash(5, -1), true},
		{"NaN", NewDash(math.NaN(), 1), true},
		{"infinite", NewDash(math.Inf(1)), true},
		{"all zero", NewDash(0, 0), true},
		{"infinite offset", NewDash(1, 1).WithOffset(math.Inf(-1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dash.validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("validate() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
