package gorast

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color(0)

func TestColorPacking(t *testing.T) {
	c := NewColor(0x11, 0x22, 0x33, 0x44)

	if got := c.Hex(); got != 0x44332211 {
		t.Errorf("Hex() = %#08x, want 0x44332211", got)
	}
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Errorf("channels = (%#x, %#x, %#x, %#x), want (0x11, 0x22, 0x33, 0x44)",
			c.R(), c.G(), c.B(), c.A())
	}
}

func TestFromHexRoundTrip(t *testing.T) {
	values := []uint32{0, 0xFF, 0xFF00, 0xFF0000, 0xFF000000, 0xDEADBEEF, 0xFFFFFFFF}
	for _, v := range values {
		c := FromHex(v)
		if c.Hex() != v {
			t.Errorf("FromHex(%#x).Hex() = %#x", v, c.Hex())
		}
		if FromHex(c.Hex()) != c {
			t.Errorf("round trip through FromHex not identity for %#x", v)
		}
	}

	// 0xAABBGGRR layout: transparent red is 0xFF.
	if c := FromHex(0xFF); c.R() != 255 || c.A() != 0 {
		t.Errorf("FromHex(0xFF) = %v, want transparent red", c)
	}
}

func TestAddSubSaturate(t *testing.T) {
	samples := []uint8{0, 1, 100, 127, 128, 200, 254, 255}
	for _, r1 := range samples {
		for _, r2 := range samples {
			sum := NewColor(r1, 0, 0, 0).Add(NewColor(r2, 0, 0, 0)).R()
			want := uint8(min(int(r1)+int(r2), 255))
			if sum != want {
				t.Errorf("Add: %d + %d = %d, want %d", r1, r2, sum, want)
			}

			diff := NewColor(r1, 0, 0, 0).Sub(NewColor(r2, 0, 0, 0)).R()
			want = uint8(max(int(r1)-int(r2), 0))
			if diff != want {
				t.Errorf("Sub: %d - %d = %d, want %d", r1, r2, diff, want)
			}
		}
	}

	// Every channel saturates independently.
	got := NewColor(200, 10, 255, 128).Add(NewColor(100, 10, 1, 200))
	if got != NewColor(255, 20, 255, 255) {
		t.Errorf("Add = %v, want (255, 20, 255, 255)", got)
	}
}

func TestMulTruncates(t *testing.T) {
	tests := []struct {
		a, b, want uint8
	}{
		{255, 255, 255},
		{255, 128, 128},
		{128, 128, 64}, // 16384/255 = 64.25, truncated
		{1, 254, 0},    // 254/255 truncates to zero
		{0, 255, 0},
	}
	for _, tt := range tests {
		got := NewColor(tt.a, tt.a, tt.a, tt.a).Mul(NewColor(tt.b, tt.b, tt.b, tt.b))
		if got.R() != tt.want {
			t.Errorf("Mul: %d * %d = %d, want %d", tt.a, tt.b, got.R(), tt.want)
		}
	}
}

func TestScalarMulDiv(t *testing.T) {
	c := NewColor(100, 50, 200, 255)

	if got := c.MulF(0.5); got != NewColor(50, 25, 100, 127) {
		t.Errorf("MulF(0.5) = %v", got)
	}
	if got := c.MulF(2); got != NewColor(200, 100, 255, 255) {
		t.Errorf("MulF(2) = %v, want blue and alpha clamped to 255", got)
	}
	if got := c.MulF(-1); got != NewColor(0, 0, 0, 0) {
		t.Errorf("MulF(-1) = %v, want all channels clamped to 0", got)
	}
	if got := c.DivF(2); got != NewColor(50, 25, 100, 127) {
		t.Errorf("DivF(2) = %v", got)
	}
}

func TestFromFloats(t *testing.T) {
	if got := FromFloats(1, 0, 0, 1); got != NewColor(255, 0, 0, 255) {
		t.Errorf("FromFloats(1,0,0,1) = %v", got)
	}
	// Out-of-range inputs clamp silently.
	if got := FromFloats(2, -1, 0.5, 3); got != NewColor(255, 0, 127, 255) {
		t.Errorf("FromFloats(2,-1,0.5,3) = %v, want (255, 0, 127, 255)", got)
	}
}

func TestFromHSV(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    Color
	}{
		{"red at hue 0", 0, 1, 1, NewColor(255, 0, 0, 255)},
		{"green at hue 120", 120, 1, 1, NewColor(0, 255, 0, 255)},
		{"blue at hue 240", 240, 1, 1, NewColor(0, 0, 255, 255)},
		{"hue wraps", 360, 1, 1, NewColor(255, 0, 0, 255)},
		{"negative hue wraps", -120, 1, 1, NewColor(0, 0, 255, 255)},
		{"black at value 0", 180, 1, 0, NewColor(0, 0, 0, 255)},
		{"saturation clamps", 0, 5, 1, NewColor(255, 0, 0, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSV(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("FromHSV(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestFromHSVAchromatic(t *testing.T) {
	// Zero saturation yields a gray independent of hue.
	for _, h := range []float64{0, 45, 123, 300} {
		for _, v := range []float64{0, 0.25, 0.5, 1} {
			c := FromHSV(h, 0, v)
			if c.R() != c.G() || c.G() != c.B() {
				t.Fatalf("FromHSV(%v, 0, %v) = %v, not achromatic", h, v, c)
			}
			want := v * 255
			if d := float64(c.R()) - want; d < -1 || d > 1 {
				t.Errorf("FromHSV(%v, 0, %v) gray = %d, want %.1f within truncation", h, v, c.R(), want)
			}
			if c.A() != 255 {
				t.Errorf("FromHSV alpha = %d, want opaque", c.A())
			}
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := NewColor(10, 20, 30, 40)

	if got := c.WithAlpha(200); got != NewColor(10, 20, 30, 200) {
		t.Errorf("WithAlpha(200) = %v", got)
	}
	if got := c.WithAlphaF(0.5); got != NewColor(10, 20, 30, 127) {
		t.Errorf("WithAlphaF(0.5) = %v", got)
	}
	if got := c.WithAlphaF(7); got.A() != 255 {
		t.Errorf("WithAlphaF(7) alpha = %d, want clamped to 255", got.A())
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"red dominates", NewColor(1, 255, 255, 255), NewColor(2, 0, 0, 0), true},
		{"green breaks red tie", NewColor(5, 1, 255, 255), NewColor(5, 2, 0, 0), true},
		{"blue breaks green tie", NewColor(5, 5, 1, 255), NewColor(5, 5, 2, 0), true},
		{"alpha last", NewColor(5, 5, 5, 1), NewColor(5, 5, 5, 2), true},
		{"equal is not less", NewColor(5, 5, 5, 5), NewColor(5, 5, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less = %v, want %v", got, tt.want)
			}
			if tt.want && tt.b.Less(tt.a) {
				t.Error("ordering is not antisymmetric")
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	a := NewColor(10, 200, 30, 255)
	b := NewColor(20, 100, 30, 0)

	if got := Min(a, b); got != NewColor(10, 100, 30, 0) {
		t.Errorf("Min = %v", got)
	}
	if got := Max(a, b); got != NewColor(20, 200, 30, 255) {
		t.Errorf("Max = %v", got)
	}
}

func TestInterpolate(t *testing.T) {
	c0 := NewColor(255, 0, 0, 255)
	c1 := NewColor(0, 255, 0, 255)
	c2 := NewColor(0, 0, 255, 255)

	if got := Interpolate(c0, c1, c2, 1, 0, 0); got != c0 {
		t.Errorf("weight (1,0,0) = %v, want %v", got, c0)
	}
	if got := Interpolate(c0, c1, c2, 0, 0, 1); got != c2 {
		t.Errorf("weight (0,0,1) = %v, want %v", got, c2)
	}

	// Equal weights of one color reproduce it within truncation bias.
	w := NewColor(90, 90, 90, 255)
	got := Interpolate(w, w, w, 1.0/3, 1.0/3, 1.0/3)
	for _, ch := range []uint8{got.R(), got.G(), got.B()} {
		if ch != 89 && ch != 90 {
			t.Errorf("equal-weight interpolation = %v, want 90 within 1 LSB toward zero", got)
		}
	}
}

func TestFromHTML(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", NewColor(255, 0, 0, 255)},
		{"#F00", NewColor(255, 0, 0, 255)},
		{"#80FF0000", NewColor(255, 0, 0, 0x80)},
		{"#abcdef", NewColor(0xAB, 0xCD, 0xEF, 255)},
		{"red", NewColor(255, 0, 0, 255)},
		{"RED", NewColor(255, 0, 0, 255)},
		{"CornflowerBlue", NewColor(0x64, 0x95, 0xED, 255)},
		{"rebeccapurple", NewColor(0x66, 0x33, 0x99, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromHTML(tt.in)
			if err != nil {
				t.Fatalf("FromHTML(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FromHTML(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromHTMLErrors(t *testing.T) {
	if _, err := FromHTML("not-a-color"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("unknown name: err = %v, want ErrUnknownColor", err)
	}
	for _, in := range []string{"#12345", "#GGGGGG", "#", "#FFFFFFFFF"} {
		if _, err := FromHTML(in); !errors.Is(err, ErrMalformedColor) {
			t.Errorf("FromHTML(%q): err = %v, want ErrMalformedColor", in, err)
		}
	}
}

func TestNamedColorTable(t *testing.T) {
	if len(namedColors) < 140 {
		t.Errorf("named color table has %d entries, want the full CSS set", len(namedColors))
	}
	// Grey aliases match their gray spellings.
	aliases := [][2]string{{"gray", "grey"}, {"darkslategray", "darkslategrey"}, {"dimgray", "dimgrey"}}
	for _, pair := range aliases {
		if namedColors[pair[0]] != namedColors[pair[1]] {
			t.Errorf("%s != %s", pair[0], pair[1])
		}
	}
}

func TestColorInterface(t *testing.T) {
	// Premultiplied 16-bit conversion for a half-alpha white.
	r, g, b, a := NewColor(255, 255, 255, 128).RGBA()
	if a != 0x8080 {
		t.Errorf("alpha = %#x, want 0x8080", a)
	}
	if r != g || g != b || r != a {
		t.Errorf("premultiplied white = (%#x, %#x, %#x, %#x), want equal channels", r, g, b, a)
	}
}
