package colour

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		components []float64
		wantArity  int
		wantPanic  bool
	}{
		{name: "rgb", components: []float64{1, 2, 3}, wantArity: 3},
		{name: "rgba", components: []float64{1, 2, 3, 4}, wantArity: 4},
		{name: "too few", components: []float64{1, 2}, wantPanic: true},
		{name: "too many", components: []float64{1, 2, 3, 4, 5}, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic != (r != nil) {
					t.Fatalf("New(%v) panic = %v, wantPanic %v", tt.components, r, tt.wantPanic)
				}
				if r != nil {
					if err, ok := r.(error); !ok || !errors.Is(err, ErrArity) {
						t.Errorf("New(%v) panicked with %v, want ErrArity", tt.components, r)
					}
				}
			}()

			c := New(tt.components...)
			if c.Arity() != tt.wantArity {
				t.Errorf("Arity() = %d, want %d", c.Arity(), tt.wantArity)
			}
			for j, want := range tt.components {
				if c.At(j) != want {
					t.Errorf("At(%d) = %v, want %v", j, c.At(j), want)
				}
			}
		})
	}
}

func TestCheckArity(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		func() {
			defer func() {
				r := recover()
				if err, ok := r.(error); !ok || !errors.Is(err, ErrArity) {
					t.Errorf("CheckArity(%d) panicked with %v, want ErrArity", n, r)
				}
			}()
			CheckArity(n)
		}()
	}

	CheckArity(3)
	CheckArity(MaxArity)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Colour
		want int
	}{
		{"equal", RGB(1, 2, 3), RGB(1, 2, 3), 0},
		{"within tolerance", RGB(0.1, 0.2, 0.3), RGB(0.1002, 0.2, 0.3), 0},
		{"first component decides", RGB(1, 9, 9), RGB(2, 0, 0), -1},
		{"later component", RGB(1, 2, 4), RGB(1, 2, 3), 1},
		{"alpha", RGBA(1, 2, 3, 0), RGBA(1, 2, 3, 1), -1},
		{"outside tolerance", RGB(0.1, 0.2, 0.3), RGB(0.101, 0.2, 0.3), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualDifferentArity(t *testing.T) {
	if RGB(0, 0, 0).Equal(RGBA(0, 0, 0, 0)) {
		t.Error("colours of different arity must not be equal")
	}
}

func TestIsDefined(t *testing.T) {
	if !RGB(1, -1, 0).IsDefined() {
		t.Error("finite colour reported undefined")
	}
	if RGB(math.Inf(1), 0, 0).IsDefined() {
		t.Error("infinite colour reported defined")
	}
	if RGB(0, math.NaN(), 0).IsDefined() {
		t.Error("NaN colour reported defined")
	}
}

func TestString(t *testing.T) {
	if got := RGB(0.5, 1, -2).String(); got != "(0.5, 1, -2)" {
		t.Errorf("String() = %q", got)
	}
	if got := RGBA(1, 2, 3, 4).String(); got != "(1, 2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}

func TestWithAndMap(t *testing.T) {
	c := RGB(1, 2, 3)
	d := c.With(1, 5)
	if c.At(1) != 2 || d.At(1) != 5 {
		t.Errorf("With() changed the receiver or did not apply: %v %v", c, d)
	}

	doubled := c.Map(func(x float64) float64 { return 2 * x })
	if !doubled.Equal(RGB(2, 4, 6)) {
		t.Errorf("Map() = %v", doubled)
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		base                 Base
		scale                float64
		clampIn, clampWant   float64
		invertIn, invertWant float64
	}{
		{Normal, 1, 1.5, 1, 0.25, 0.75},
		{Normal, 1, -1.5, -1, -0.25, -0.75},
		{Integer, 255, 300, 255, 0, 255},
		{Integer256, 256, -300, -256, 56, 200},
	}

	for _, tt := range tests {
		t.Run(tt.base.String(), func(t *testing.T) {
			if got := tt.base.Scale(); got != tt.scale {
				t.Errorf("Scale() = %v, want %v", got, tt.scale)
			}
			if got := tt.base.Clamp(tt.clampIn); got != tt.clampWant {
				t.Errorf("Clamp(%v) = %v, want %v", tt.clampIn, got, tt.clampWant)
			}
			if got := tt.base.Invert(tt.invertIn); got != tt.invertWant {
				t.Errorf("Invert(%v) = %v, want %v", tt.invertIn, got, tt.invertWant)
			}
		})
	}
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		in      string
		want    Base
		wantErr bool
	}{
		{"normal", Normal, false},
		{"", Normal, false},
		{"INTEGER", Integer, false},
		{"255", Integer, false},
		{"256", Integer256, false},
		{"hex", Normal, true},
	}

	for _, tt := range tests {
		got, err := ParseBase(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBase(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBase(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, name := range ValidBases() {
		b, err := ParseBase(name)
		if err != nil || b.String() != name {
			t.Errorf("ParseBase(%q) = %v, %v", name, b, err)
		}
	}
}

func TestKernels(t *testing.T) {
	if got := SafeDiv(6.0, 0); got != 6 {
		t.Errorf("SafeDiv(6, 0) = %v, want 6", got)
	}
	if got := SafeDiv(6.0, 3); got != 2 {
		t.Errorf("SafeDiv(6, 3) = %v, want 2", got)
	}
	if got := SignedPow(-0.25, 0.5); math.Abs(got+0.5) > 1e-12 {
		t.Errorf("SignedPow(-0.25, 0.5) = %v, want -0.5", got)
	}
	if got := RoundTo(1.23456, 2); got != 1.23 {
		t.Errorf("RoundTo(1.23456, 2) = %v, want 1.23", got)
	}
	if got := Lerp(float32(2), 4, 0.5); got != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %v, want 3", got)
	}
	if got := Clamp(math.NaN(), 0, 1); !math.IsNaN(got) {
		t.Errorf("Clamp(NaN) = %v, want NaN", got)
	}
}

func TestTransforms(t *testing.T) {
	for _, name := range TransformNames() {
		if _, err := LookupTransform(name); err != nil {
			t.Errorf("LookupTransform(%q) error = %v", name, err)
		}
	}
	if _, err := LookupTransform("rgb-to-cmyk"); err == nil {
		t.Error("LookupTransform(rgb-to-cmyk) expected error")
	}

	// Alpha passes through and the base scale is respected.
	c := RGBA(0, 255, 0, 128)
	hsl := RGBToHSL(c, Integer)
	if math.Abs(hsl.At(0)-255.0/3) > 1e-9 || math.Abs(hsl.At(1)-255) > 1e-9 || math.Abs(hsl.At(2)-127.5) > 1e-9 {
		t.Errorf("RGBToHSL(%v) = %v", c, hsl)
	}
	if hsl.At(3) != 128 {
		t.Errorf("alpha = %v, want 128", hsl.At(3))
	}

	back := HSLToRGB(hsl, Integer)
	for j := 0; j < 3; j++ {
		if math.Abs(back.At(j)-c.At(j)) > 1e-6 {
			t.Errorf("HSLToRGB(RGBToHSL(%v)) = %v", c, back)
			break
		}
	}
}
