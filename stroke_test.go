package tulis

import (
	"image/color"
	"testing"
)

func TestStrokePresets(t *testing.T) {
	tests := []struct {
		name   string
		stroke Stroke
		width  float64
		dashed bool
	}{
		{"ink", DefaultInk(), 8, false},
		{"guide", GuideStroke(), 4, true},
		{"overlay", OverlayStroke(), 4, true},
		{"mask", MaskStroke(), 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.stroke.Width != tt.width {
				t.Errorf("Width = %v, want %v", tt.stroke.Width, tt.width)
			}
			if tt.stroke.Dash.IsDashed() != tt.dashed {
				t.Errorf("IsDashed = %v, want %v", tt.stroke.Dash.IsDashed(), tt.dashed)
			}
		})
	}
}

func TestStrokeWithers(t *testing.T) {
	base := DefaultInk()
	s := base.WithWidth(3).WithColor(color.Black).WithDash(NewDash(2, 2))
	if s.Width != 3 || s.Color != color.Black || !s.Dash.IsDashed() {
		t.Errorf("withers = %+v", s)
	}
	if base.Width != 8 || base.Dash != nil {
		t.Error("withers modified the receiver")
	}
	if s.WithDash(nil).Dash != nil {
		t.Error("WithDash(nil) should return a solid stroke")
	}
}

func TestStrokeDeviceScalesWithDPR(t *testing.T) {
	st := GuideStroke().device(Scale{Width: 10, Height: 10, DPR: 2})
	if st.Width != 8 {
		t.Errorf("device width = %v, want 8", st.Width)
	}
	if len(st.Dashes) != 2 || st.Dashes[0] != 16 || st.Dashes[1] != 24 {
		t.Errorf("device dashes = %v, want [16 24]", st.Dashes)
	}

	solid := DefaultInk().device(Scale{Width: 10, Height: 10, DPR: 3})
	if solid.Width != 24 || solid.Dashes != nil {
		t.Errorf("solid device style = %+v", solid)
	}
}

func TestOverlayColorIsFaintBlue(t *testing.T) {
	r, g, b, a := OverlayColor.RGBA()
	if a == 0 || a > 0xffff/4 {
		t.Errorf("overlay alpha = %#x, want faint", a)
	}
	if !(b > g && g > r) {
		t.Errorf("overlay colour = %#x %#x %#x, want blue dominant", r, g, b)
	}
}
