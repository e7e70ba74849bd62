package math

import "testing"

func TestVec2Basics(t *testing.T) {
	a := NewVec2(1.0, 2.0)
	b := NewVec2(3.0, -1.0)

	if got := a.Add(b); !got.Compare(NewVec2(4.0, 1.0), K_EPSILON) {
		t.Errorf("Add() = %v, want (4, 1)", got)
	}
	if got := a.Sub(b); !got.Compare(NewVec2(-2.0, 3.0), K_EPSILON) {
		t.Errorf("Sub() = %v, want (-2, 3)", got)
	}
	if got := a.MulScalar(2.0); !got.Compare(NewVec2(2.0, 4.0), K_EPSILON) {
		t.Errorf("MulScalar(2) = %v, want (2, 4)", got)
	}
	if got := a.Dot(b); got != 1.0 {
		t.Errorf("Dot() = %v, want 1", got)
	}
	if got := NewVec2(3.0, 4.0).Length(); !FloatEqual(got, 5.0) {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := NewVec2(3.0, 4.0).LengthSquared(); got != 25.0 {
		t.Errorf("LengthSquared() = %v, want 25", got)
	}
}

func TestVec3Basics(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)
	b := NewVec3(-1.0, 0.0, 2.0)

	if got := a.Add(b); !got.Compare(NewVec3(0.0, 2.0, 5.0), K_EPSILON) {
		t.Errorf("Add() = %v, want (0, 2, 5)", got)
	}
	if got := a.Sub(b); !got.Compare(NewVec3(2.0, 2.0, 1.0), K_EPSILON) {
		t.Errorf("Sub() = %v, want (2, 2, 1)", got)
	}
	if got := a.Dot(b); got != 5.0 {
		t.Errorf("Dot() = %v, want 5", got)
	}
	if got := NewVec3(2.0, 3.0, 6.0).Length(); !FloatEqual(got, 7.0) {
		t.Errorf("Length() = %v, want 7", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1.0, 0.0, 0.0)
	y := NewVec3(0.0, 1.0, 0.0)
	z := NewVec3(0.0, 0.0, 1.0)

	if got := x.Cross(y); !got.Compare(z, K_EPSILON) {
		t.Errorf("x cross y = %v, want z", got)
	}
	if got := y.Cross(x); !got.Compare(z.MulScalar(-1.0), K_EPSILON) {
		t.Errorf("y cross x = %v, want -z", got)
	}
	if got := x.Cross(x); !got.Compare(NewVec3Zero(), K_EPSILON) {
		t.Errorf("x cross x = %v, want zero", got)
	}
}

func TestVec4Basics(t *testing.T) {
	a := NewVec4(1.0, 2.0, 3.0, 4.0)
	b := NewVec4(0.5, 0.5, 0.5, 0.5)

	if got := a.Add(b); !got.Compare(NewVec4(1.5, 2.5, 3.5, 4.5), K_EPSILON) {
		t.Errorf("Add() = %v, want (1.5, 2.5, 3.5, 4.5)", got)
	}
	if got := a.Dot(b); got != 5.0 {
		t.Errorf("Dot() = %v, want 5", got)
	}
	if got := NewVec4(0.0, 2.0, 0.0, 0.0).Length(); !FloatEqual(got, 2.0) {
		t.Errorf("Length() = %v, want 2", got)
	}
}

// TestVec4SubAddsW pins the w channel of Sub: it sums instead of
// subtracting.
func TestVec4SubAddsW(t *testing.T) {
	got := NewVec4(5.0, 5.0, 5.0, 5.0).Sub(NewVec4(1.0, 2.0, 3.0, 4.0))
	want := NewVec4(4.0, 3.0, 2.0, 9.0)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{name: "3-4 triangle", v: NewVec2(3.0, 4.0), want: NewVec2(0.6, 0.8)},
		{name: "already unit", v: NewVec2(0.0, 1.0), want: NewVec2(0.0, 1.0)},
		{name: "zero stays zero", v: NewVec2Zero(), want: NewVec2Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Normalize(); !got.Compare(tt.want, K_EPSILON) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{name: "axis scaled", v: NewVec3(0.0, 0.0, 10.0), want: NewVec3(0.0, 0.0, 1.0)},
		{name: "2-3-6 triple", v: NewVec3(2.0, 3.0, 6.0), want: NewVec3(2.0/7.0, 3.0/7.0, 6.0/7.0)},
		{name: "zero stays zero", v: NewVec3Zero(), want: NewVec3Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !got.Compare(tt.want, K_EPSILON) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestVec4Normalize pins the degenerate result: every input collapses
// to zero. Unit is the working form.
func TestVec4Normalize(t *testing.T) {
	inputs := []Vec4{
		NewVec4(3.0, 0.0, 4.0, 0.0),
		NewVec4One(),
		NewVec4Zero(),
	}

	for _, v := range inputs {
		if got := v.Normalize(); got != NewVec4Zero() {
			t.Errorf("Normalize(%v) = %v, want zero vector", v, got)
		}
	}
}

func TestVec4Unit(t *testing.T) {
	got := NewVec4(0.0, 3.0, 0.0, 4.0).Unit()
	want := NewVec4(0.0, 0.6, 0.0, 0.8)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("Unit() = %v, want %v", got, want)
	}
	if got := NewVec4Zero().Unit(); got != NewVec4Zero() {
		t.Errorf("Unit() of zero = %v, want zero vector", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := NewVec3(0.0, 0.0, 0.0)
	b := NewVec3(10.0, -10.0, 4.0)

	tests := []struct {
		name string
		s    float32
		want Vec3
	}{
		{name: "start", s: 0.0, want: a},
		{name: "end", s: 1.0, want: b},
		{name: "midpoint", s: 0.5, want: NewVec3(5.0, -5.0, 2.0)},
		{name: "extrapolates", s: 2.0, want: NewVec3(20.0, -20.0, 8.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.s); !got.Compare(tt.want, K_EPSILON) {
				t.Errorf("Lerp(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestVec3Hermite(t *testing.T) {
	v := NewVec3(0.0, 0.0, 0.0)
	other := NewVec3(1.0, 0.0, 0.0)
	flat := NewVec3Zero()

	tests := []struct {
		name string
		s    float32
		want Vec3
	}{
		{name: "start anchors at receiver", s: 0.0, want: v},
		{name: "end anchors at other", s: 1.0, want: other},
		{name: "flat tangents midpoint", s: 0.5, want: NewVec3(0.5, 0.0, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Hermite(flat, other, flat, tt.s); !got.Compare(tt.want, K_EPSILON) {
				t.Errorf("Hermite(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestVec3CatmullRom(t *testing.T) {
	// Four collinear control points; the curve tracks the middle segment.
	v := NewVec3(0.0, 0.0, 0.0)
	v1 := NewVec3(1.0, 0.0, 0.0)
	v2 := NewVec3(2.0, 0.0, 0.0)
	v3 := NewVec3(3.0, 0.0, 0.0)

	tests := []struct {
		name string
		s    float32
		want Vec3
	}{
		{name: "start anchors at first inner point", s: 0.0, want: v1},
		{name: "end anchors at second inner point", s: 1.0, want: v2},
		{name: "midpoint stays on the line", s: 0.5, want: NewVec3(1.5, 0.0, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.CatmullRom(v1, v2, v3, tt.s); !got.Compare(tt.want, K_EPSILON) {
				t.Errorf("CatmullRom(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestVec3BaryCentric(t *testing.T) {
	a := NewVec3(0.0, 0.0, 0.0)
	b := NewVec3(3.0, 0.0, 0.0)
	c := NewVec3(0.0, 3.0, 0.0)

	tests := []struct {
		name string
		f, g float32
		want Vec3
	}{
		{name: "origin corner", f: 0.0, g: 0.0, want: a},
		{name: "second corner", f: 1.0, g: 0.0, want: b},
		{name: "third corner", f: 0.0, g: 1.0, want: c},
		{name: "centroid", f: 1.0 / 3.0, g: 1.0 / 3.0, want: NewVec3(1.0, 1.0, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.BaryCentric(b, c, tt.f, tt.g); !got.Compare(tt.want, K_EPSILON) {
				t.Errorf("BaryCentric(%v, %v) = %v, want %v", tt.f, tt.g, got, tt.want)
			}
		})
	}
}

func TestVec2CCW(t *testing.T) {
	x := NewVec2(1.0, 0.0)
	y := NewVec2(0.0, 1.0)

	if got := x.CCW(y); got != 1.0 {
		t.Errorf("x.CCW(y) = %v, want 1", got)
	}
	if got := y.CCW(x); got != -1.0 {
		t.Errorf("y.CCW(x) = %v, want -1", got)
	}
	if got := x.CCW(x.MulScalar(4.0)); got != 0.0 {
		t.Errorf("CCW of parallel vectors = %v, want 0", got)
	}
}

func TestVecMinMax(t *testing.T) {
	a := NewVec3(1.0, 5.0, -2.0)
	b := NewVec3(3.0, 4.0, -7.0)

	if got := a.Min(b); !got.Compare(NewVec3(1.0, 4.0, -7.0), K_EPSILON) {
		t.Errorf("Min() = %v, want (1, 4, -7)", got)
	}
	if got := a.Max(b); !got.Compare(NewVec3(3.0, 5.0, -2.0), K_EPSILON) {
		t.Errorf("Max() = %v, want (3, 5, -2)", got)
	}
}

func TestVec4Cross(t *testing.T) {
	tests := []struct {
		name    string
		v, b, c Vec4
		want    Vec4
	}{
		{
			name: "basis vectors",
			v:    NewVec4(1.0, 0.0, 0.0, 0.0),
			b:    NewVec4(0.0, 1.0, 0.0, 0.0),
			c:    NewVec4(0.0, 0.0, 1.0, 0.0),
			want: NewVec4(0.0, 0.0, 0.0, -1.0),
		},
		{
			name: "mixed operands",
			v:    NewVec4(1.0, 2.0, 3.0, 4.0),
			b:    NewVec4(1.0, 0.0, 0.0, 0.0),
			c:    NewVec4(0.0, 1.0, 0.0, 0.0),
			want: NewVec4(0.0, 0.0, 4.0, -3.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Cross(tt.b, tt.c)
			if !got.Compare(tt.want, K_EPSILON) {
				t.Errorf("Cross() = %v, want %v", got, tt.want)
			}
			// The result is orthogonal to all three operands.
			for _, in := range []Vec4{tt.v, tt.b, tt.c} {
				if d := got.Dot(in); kabs(d) > K_EPSILON {
					t.Errorf("Cross() result not orthogonal to %v, dot = %v", in, d)
				}
			}
		})
	}
}

func TestVec4Transform(t *testing.T) {
	v := NewVec4(1.0, 2.0, 3.0, 1.0)

	if got := v.Transform(NewMat4Identity()); got != v {
		t.Errorf("Transform(identity) = %v, want %v", got, v)
	}

	translation := NewMat4Translation(NewVec3(10.0, 20.0, 30.0))
	if got := v.Transform(translation); !got.Compare(NewVec4(11.0, 22.0, 33.0, 1.0), K_EPSILON) {
		t.Errorf("Transform(translation) = %v, want (11, 22, 33, 1)", got)
	}

	scale := NewMat4Scale(NewVec3(2.0, 3.0, 4.0))
	if got := v.Transform(scale); !got.Compare(NewVec4(2.0, 6.0, 12.0, 1.0), K_EPSILON) {
		t.Errorf("Transform(scale) = %v, want (2, 6, 12, 1)", got)
	}
}

func TestVec3Transform(t *testing.T) {
	// The implicit w of 1 picks up the translation row and the result
	// carries the full w.
	translation := NewMat4Translation(NewVec3(1.0, 2.0, 3.0))
	got := NewVec3(1.0, 1.0, 1.0).Transform(translation)
	want := NewVec4(2.0, 3.0, 4.0, 1.0)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestVec3TransformCoord(t *testing.T) {
	translation := NewMat4Translation(NewVec3(1.0, 2.0, 3.0))
	got := NewVec3(1.0, 1.0, 1.0).TransformCoord(translation)
	want := NewVec3(2.0, 3.0, 4.0)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("TransformCoord() = %v, want %v", got, want)
	}
}

// TestVec3TransformNormal pins the translation pickup: normals go
// through the same cells as points, so a translated transform shifts
// them. TransformDirection is the translation-free form.
func TestVec3TransformNormal(t *testing.T) {
	translation := NewMat4Translation(NewVec3(5.0, 0.0, 0.0))
	n := NewVec3(0.0, 0.0, 1.0)

	got := n.TransformNormal(translation)
	want := NewVec3(5.0, 0.0, 1.0)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("TransformNormal() = %v, want %v", got, want)
	}
	if coord := n.TransformCoord(translation); !got.Compare(coord, K_EPSILON) {
		t.Errorf("TransformNormal() = %v, TransformCoord() = %v, want equal results", got, coord)
	}
}

func TestVec3TransformDirection(t *testing.T) {
	translation := NewMat4Translation(NewVec3(5.0, 0.0, 0.0))
	n := NewVec3(0.0, 0.0, 1.0)

	if got := n.TransformDirection(translation); !got.Compare(n, K_EPSILON) {
		t.Errorf("TransformDirection(translation) = %v, want %v", got, n)
	}

	rotation := NewMat4RotationZ(K_HALF_PI)
	got := NewVec3(1.0, 0.0, 0.0).TransformDirection(rotation)
	want := NewVec3(0.0, 1.0, 0.0)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("TransformDirection(rotation) = %v, want %v", got, want)
	}
}

// TestVec2Transform pins the 2-element transform shape: z is always
// zero, w collects only the first two rows of the fourth column, and
// the translation row contributes nothing.
func TestVec2Transform(t *testing.T) {
	mat := NewMat4(
		1.0, 0.0, 0.0, 7.0,
		0.0, 1.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		3.0, 4.0, 0.0, 1.0,
	)

	got := NewVec2(1.0, 2.0).Transform(mat)
	want := NewVec4(1.0, 2.0, 0.0, 7.0)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestVec2TransformCoord(t *testing.T) {
	mat := NewMat4(
		1.0, 0.0, 0.0, 0.0,
		0.0, 1.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		3.0, 4.0, 0.0, 1.0,
	)

	got := NewVec2(1.0, 2.0).TransformCoord(mat)
	want := NewVec2(4.0, 6.0)
	if !got.Compare(want, K_EPSILON) {
		t.Errorf("TransformCoord() = %v, want %v", got, want)
	}
}

// TestVec2TransformNormal checks that the 2-element normal form leaves
// the translation row out, unlike the 3-element one.
func TestVec2TransformNormal(t *testing.T) {
	mat := NewMat4(
		1.0, 0.0, 0.0, 0.0,
		0.0, 1.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		3.0, 4.0, 0.0, 1.0,
	)

	n := NewVec2(1.0, 2.0)
	if got := n.TransformNormal(mat); !got.Compare(n, K_EPSILON) {
		t.Errorf("TransformNormal() = %v, want %v", got, n)
	}
}

func TestVecCompare(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)

	if !a.Compare(NewVec3(1.00005, 2.0, 3.0), 0.001) {
		t.Error("Compare() within tolerance = false, want true")
	}
	if a.Compare(NewVec3(1.1, 2.0, 3.0), 0.001) {
		t.Error("Compare() outside tolerance = true, want false")
	}
}
