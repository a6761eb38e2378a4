package fweh

import (
	"fmt"
	"strconv"
	"strings"
)

// Point represents a 2D offset with floating-point coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Trunc returns the point as integer coordinates, truncated toward zero.
func (p Point) Trunc() (int, int) {
	return int(p.X), int(p.Y)
}

// ParsePoint parses a point from a string of two comma-separated numbers,
// e.g. "10,20" or "25,-25".
func ParsePoint(spec string) (Point, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: invalid point format %q", ErrInvalidParameter, spec)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: invalid point x in %q", ErrInvalidParameter, spec)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: invalid point y in %q", ErrInvalidParameter, spec)
	}
	return Point{X: x, Y: y}, nil
}
