package geometry

import "math"

// AngleFromXPlus returns the angle of v measured counter-clockwise from +X, in [-π, π).
// It panics with ErrZeroVector on the zero vector, which is never a valid direction.
func AngleFromXPlus(v Vector) float64 {
	angle, err := AngleFromXPlusChecked(v)
	if err != nil {
		panic(err)
	}
	return angle
}

// AngleFromXPlusChecked is AngleFromXPlus returning ErrZeroVector instead of panicking.
func AngleFromXPlusChecked(v Vector) (float64, error) {
	if v.IsZero() {
		return 0, ErrZeroVector
	}
	return halfOpen(math.Atan2(v.DY, v.DX)), nil
}

// AngleFromYPlus returns the angle of v measured from +Y towards +X, in [-π, π).
func AngleFromYPlus(v Vector) float64 {
	if v.IsZero() {
		panic(ErrZeroVector)
	}
	return halfOpen(math.Atan2(v.DX, v.DY))
}

// AngleFromXPlusScalar folds AngleFromXPlus into [0, π). The result describes an
// undirected line, so v and -v share it.
func AngleFromXPlusScalar(v Vector) float64 {
	angle := AngleFromXPlus(v)
	if angle < 0 {
		angle += math.Pi
	}
	// -π folds onto 0 but rounding can leave π behind
	if angle >= math.Pi {
		angle -= math.Pi
	}
	return angle
}

// VectorFromRadius builds a unit vector at the given angle from +X.
func VectorFromRadius(radius float64) Vector {
	return Vector{DX: math.Cos(radius), DY: math.Sin(radius)}
}

// VectorFromXPlusRadius is an alias of VectorFromRadius kept for symmetry with
// VectorFromYPlusRadius.
func VectorFromXPlusRadius(radius float64) Vector {
	return VectorFromRadius(radius)
}

// VectorFromYPlusRadius builds a unit vector at the given angle from +Y towards +X.
func VectorFromYPlusRadius(radius float64) Vector {
	return Vector{DX: math.Sin(radius), DY: math.Cos(radius)}
}

// AngleBetween returns the unsigned angle between v1 and v2 in [0, π].
// A zero-length operand yields 0.
func AngleBetween(v1, v2 Vector) float64 {
	magnitude := v1.Length() * v2.Length()
	if magnitude == 0 {
		return 0
	}
	cos := Dot(v1, v2) / magnitude
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// AngleFrom returns the counter-clockwise angle from v1 to v2 in [0, 2π).
func AngleFrom(v1, v2 Vector) float64 {
	return RestrictWithin2Pi(AngleFromXPlus(v2) - AngleFromXPlus(v1))
}

// RestrictWithin2Pi maps any angle into [0, 2π).
func RestrictWithin2Pi(angle float64) float64 {
	result := math.Mod(angle, 2*math.Pi)
	if result < 0 {
		result += 2 * math.Pi
	}
	if result >= 2*math.Pi {
		result = 0
	}
	return result
}

// halfOpen maps the (-π, π] output of atan2 onto [-π, π).
func halfOpen(angle float64) float64 {
	if angle >= math.Pi {
		return -math.Pi
	}
	return angle
}
