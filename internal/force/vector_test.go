package force

import (
	"errors"
	"math"
	"testing"
)

func TestVector_Arithmetic(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}
	b := Vector{X: 4, Y: -5, Z: 6}

	if got := a.Add(b); got != (Vector{X: 5, Y: -3, Z: 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vector{X: -3, Y: 7, Z: -3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vector{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != 1*4+2*-5+3*6 {
		t.Errorf("Dot = %v", got)
	}

	cross := Vector{X: 1, Y: 0, Z: 0}.Cross(Vector{X: 0, Y: 1, Z: 0})
	if cross != (Vector{X: 0, Y: 0, Z: 1}) {
		t.Errorf("Cross = %+v, want unit Z", cross)
	}
}

func TestVector_Div(t *testing.T) {
	v := Vector{X: 2, Y: 4, Z: 6}

	got, err := v.Div(2)
	if err != nil {
		t.Fatalf("Div(2) returned error: %v", err)
	}
	if got != (Vector{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Div(2) = %+v", got)
	}

	if _, err = v.Div(0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div(0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestVector_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
	}{
		{"unit x", Vector{X: 1}},
		{"arbitrary", Vector{X: 3, Y: -4, Z: 12}},
		{"small", Vector{X: 1e-9, Y: 2e-9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.v.Normalize().Magnitude()
			if math.Abs(m-1) > 1e-9 {
				t.Errorf("normalized magnitude = %v, want 1", m)
			}
		})
	}

	// The zero vector has no direction; policy is to return it unchanged.
	if got := (Vector{}).Normalize(); got != (Vector{}) {
		t.Errorf("Normalize(zero) = %+v, want zero vector", got)
	}
}

func TestVector_Angles(t *testing.T) {
	v := Vector{X: 1, Y: 1, Z: 5}

	if got := v.Angle(); math.Abs(got-math.Pi/4) > 1e-12 {
		t.Errorf("Angle = %v, want pi/4", got)
	}
	if got := v.AngleDegrees(); math.Abs(got-45) > 1e-9 {
		t.Errorf("AngleDegrees = %v, want 45", got)
	}
	if got := v.HorizontalMagnitude(); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("HorizontalMagnitude = %v, want sqrt(2)", got)
	}
}
