package geometry

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func nearly(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func sampleUnitVectors() []Vector {
	var vs []Vector
	for i := 0; i < 64; i++ {
		vs = append(vs, VectorFromRadius(-math.Pi+float64(i)*math.Pi/32))
	}
	vs = append(vs, Vector{1, 0}, Vector{-1, 0}, Vector{0, 1}, Vector{0, -1})
	return vs
}

func TestAngleFromXPlusRangeAndRoundTrip(t *testing.T) {
	for _, v := range sampleUnitVectors() {
		a := AngleFromXPlus(v)
		if a < -math.Pi || a >= math.Pi {
			t.Fatalf("AngleFromXPlus(%v) = %v, outside [-π, π)", v, a)
		}
		back := VectorFromXPlusRadius(a)
		if !back.Equal(v, DefaultPrecision) {
			t.Errorf("round trip of %v gave %v", v, back)
		}
	}
}

func TestAngleFromXPlusNegativeXAxis(t *testing.T) {
	if got := AngleFromXPlus(Vector{-1, 0}); got != -math.Pi {
		t.Errorf("Expected -π for -X, got %v", got)
	}
	if got := AngleFromXPlus(Vector{0, 1}); !nearly(got, math.Pi/2, tol) {
		t.Errorf("Expected π/2 for +Y, got %v", got)
	}
}

func TestAngleFromYPlus(t *testing.T) {
	cases := []struct {
		v    Vector
		want float64
	}{
		{Vector{0, 1}, 0},
		{Vector{1, 0}, math.Pi / 2},
		{Vector{-1, 0}, -math.Pi / 2},
		{Vector{0, -1}, -math.Pi},
		{Vector{1, 1}, math.Pi / 4},
		{Vector{-1, -1}, -3 * math.Pi / 4},
	}
	for _, c := range cases {
		if got := AngleFromYPlus(c.v); !nearly(got, c.want, tol) {
			t.Errorf("AngleFromYPlus(%v) = %v, want %v", c.v, got, c.want)
		}
		if back := VectorFromYPlusRadius(AngleFromYPlus(c.v)); !back.Equal(c.v.Unit(), DefaultPrecision) {
			t.Errorf("VectorFromYPlusRadius round trip of %v gave %v", c.v, back)
		}
	}
}

func TestAngleFromXPlusScalarIsUndirected(t *testing.T) {
	for _, v := range sampleUnitVectors() {
		a := AngleFromXPlusScalar(v)
		b := AngleFromXPlusScalar(v.Neg())
		if a < 0 || a >= math.Pi {
			t.Fatalf("AngleFromXPlusScalar(%v) = %v, outside [0, π)", v, a)
		}
		if !EqualWithPrecision(a, b, DefaultPrecision) {
			t.Errorf("scalar angle of %v (%v) differs from its reverse (%v)", v, a, b)
		}
	}
}

func TestZeroVectorAngle(t *testing.T) {
	if _, err := AngleFromXPlusChecked(Vector{}); !errors.Is(err, ErrZeroVector) {
		t.Fatalf("Expected ErrZeroVector, got %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic for zero vector")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrZeroVector) {
			t.Errorf("Expected ErrZeroVector panic, got %v", r)
		}
	}()
	AngleFromXPlus(Vector{})
}

func TestAngleBetween(t *testing.T) {
	if got := AngleBetween(Vector{1, 0}, Vector{0, 3}); !nearly(got, math.Pi/2, tol) {
		t.Errorf("Expected π/2, got %v", got)
	}
	if got := AngleBetween(Vector{1, 0}, Vector{-2, 0}); !nearly(got, math.Pi, tol) {
		t.Errorf("Expected π, got %v", got)
	}
	if got := AngleBetween(Vector{}, Vector{1, 0}); got != 0 {
		t.Errorf("Expected 0 for degenerate input, got %v", got)
	}
	// parallel vectors whose cosine rounds past 1 must not yield NaN
	v := Vector{0.1, 0.7}
	if got := AngleBetween(v, v.Scale(3)); math.IsNaN(got) || !nearly(got, 0, 1e-6) {
		t.Errorf("Expected 0 for parallel vectors, got %v", got)
	}
}

func TestAngleFrom(t *testing.T) {
	if got := AngleFrom(Vector{1, 0}, Vector{0, 1}); !nearly(got, math.Pi/2, tol) {
		t.Errorf("Expected π/2, got %v", got)
	}
	if got := AngleFrom(Vector{0, 1}, Vector{1, 0}); !nearly(got, 3*math.Pi/2, tol) {
		t.Errorf("Expected 3π/2, got %v", got)
	}
	for _, v := range sampleUnitVectors() {
		got := AngleFrom(Vector{1, 0}, v)
		if got < 0 || got >= 2*math.Pi {
			t.Fatalf("AngleFrom out of [0, 2π): %v", got)
		}
	}
}

func TestEqualWithPrecision(t *testing.T) {
	for _, a := range []float64{0, 1, -3.5, 1e6, 123.456} {
		if !EqualWithPrecision(a, a, DefaultPrecision) {
			t.Errorf("Expected %v to equal itself", a)
		}
		if EqualWithPrecision(a, a+2*DefaultPrecision, DefaultPrecision) {
			t.Errorf("Expected %v and %v to differ", a, a+2*DefaultPrecision)
		}
	}

	// the bound itself is exclusive
	if EqualWithPrecision(0, 1e-4, 1e-4) {
		t.Error("Expected a difference equal to the precision to count as unequal")
	}
	if !EqualWithPrecision(0, 0.5e-4, 1e-4) {
		t.Error("Expected a difference below the precision to count as equal")
	}
}

func TestNormalize(t *testing.T) {
	v := Vector{3, 4}.Normalize(2)
	if !nearly(v.Length(), 2, tol) {
		t.Errorf("Expected length 2, got %v", v.Length())
	}
	if z := (Vector{}).Normalize(1); !z.IsZero() {
		t.Errorf("Expected zero vector to stay zero, got %v", z)
	}
}
