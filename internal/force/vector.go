package force

import "math"

// Vector represents a 3-axis force (or position) in platform coordinates:
// X is medio-lateral, Y is anterior-posterior, Z is vertical. Vector is a
// pure value type; every operation returns a new value and never mutates
// the receiver.
type Vector struct {
	X float64 `json:"x"` // Medio-lateral component
	Y float64 `json:"y"` // Anterior-posterior component
	Z float64 `json:"z"` // Vertical component
}

// Add returns the component-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference of v and other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v multiplied by factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor, v.Z * factor}
}

// Div returns v divided by scalar. Dividing by zero is rejected with
// ErrDivisionByZero rather than producing Inf components.
func (v Vector) Div(scalar float64) (Vector, error) {
	if scalar == 0 {
		return Vector{}, ErrDivisionByZero
	}
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}, nil
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// HorizontalMagnitude returns the norm of the XY-plane projection of v.
func (v Vector) HorizontalMagnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing in the direction of v.
// The zero vector has no direction; by policy Normalize returns the zero
// vector for it instead of failing, so callers can normalize resultant
// forces without guarding the unloaded case.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return Vector{v.X / m, v.Y / m, v.Z / m}
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Angle returns the direction of the XY-plane projection of v in radians,
// measured as atan2(y, x).
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleDegrees returns Angle converted to degrees.
func (v Vector) AngleDegrees() float64 {
	return v.Angle() * 180 / math.Pi
}
