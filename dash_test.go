package tulis

import (
	"slices"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{name: "nil input returns nil", lengths: nil, wantNil: true},
		{name: "all zeros returns nil", lengths: []float64{0, 0}, wantNil: true},
		{name: "guide pattern", lengths: []float64{8, 12}, wantArray: []float64{8, 12}},
		{name: "single value", lengths: []float64{5}, wantArray: []float64{5}},
		{name: "negative values become absolute", lengths: []float64{-5, 3}, wantArray: []float64{5, 3}},
		{name: "mixed positive and zero", lengths: []float64{5, 0, 3}, wantArray: []float64{5, 0, 3}},
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
				t.Fatal("NewDash() = nil, want non-nil")
			}
			if !slices.Equal(got.Array, tt.wantArray) {
				t.Errorf("NewDash().Array = %v, want %v", got.Array, tt.wantArray)
			}
		})
	}
}

func TestDashIsDashed(t *testing.T) {
	var nilDash *Dash
	if nilDash.IsDashed() {
		t.Error("nil dash should be solid")
	}
	if !NewDash(8, 12).IsDashed() {
		t.Error("NewDash(8, 12) should be dashed")
	}
}

func TestDashClone(t *testing.T) {
	d := NewDash(8, 12)
	d.Offset = 3
	c := d.Clone()
	c.Array[0] = 99
	if d.Array[0] != 8 {
		t.Errorf("Clone shares its array: original[0] = %v", d.Array[0])
	}
	if c.Offset != 3 {
		t.Errorf("Clone().Offset = %v, want 3", c.Offset)
	}

	var nilDash *Dash
	if nilDash.Clone() != nil {
		t.Error("nil.Clone() should be nil")
	}
}

func TestDashScale(t *testing.T) {
	d := &Dash{Array: []float64{8, 12}, Offset: 2}

	got := d.Scale(2)
	if !slices.Equal(got.Array, []float64{16, 24}) {
		t.Errorf("Scale(2).Array = %v, want [16 24]", got.Array)
	}
	if got.Offset != 4 {
		t.Errorf("Scale(2).Offset = %v, want 4", got.Offset)
	}
	if d.Array[0] != 8 {
		t.Error("Scale modified the receiver")
	}
	if d.Scale(0) != d {
		t.Error("Scale(0) should return the receiver unchanged")
	}
}

func TestDashEffectiveArray(t *testing.T) {
	tests := []struct {
		name string
		dash *Dash
		want []float64
	}{
		{"nil", nil, nil},
		{"even", NewDash(8, 12), []float64{8, 12}},
		{"odd is duplicated", NewDash(5, 3, 1), []float64{5, 3, 1, 5, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dash.effectiveArray(); !slices.Equal(got, tt.want) {
				t.Errorf("effectiveArray() = %v, want %v", got, tt.want)
			}
		})
	}
}
