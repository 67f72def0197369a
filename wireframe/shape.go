package wireframe

import (
	"errors"
	"fmt"
)

// ErrEdgeIndex reports an edge that points outside its vertex list.
var ErrEdgeIndex = errors.New("edge index out of range")

// Edge connects two vertices by index.
type Edge struct {
	A, B int
}

// Shape is a polyhedron described by its vertices and the edges between them.
type Shape struct {
	Vertices []Vec3
	Edges    []Edge
}

// Validate checks that every edge refers to an existing vertex.
func (s Shape) Validate() error {
	n := len(s.Vertices)
	for i, e := range s.Edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return fmt.Errorf("edge %d (%d,%d) with %d vertices: %w", i, e.A, e.B, n, ErrEdgeIndex)
		}
	}
	return nil
}

// Cube returns the unit cube with corners at ±1 on every axis.
func Cube() Shape {
	return Shape{
		Vertices: []Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Edges: []Edge{
			// back face
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			// front face
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// Tetrahedron returns a regular tetrahedron inscribed in the unit cube.
func Tetrahedron() Shape {
	return Shape{
		Vertices: []Vec3{
			{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
		},
		Edges: []Edge{
			{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		},
	}
}

// Octahedron returns the octahedron with vertices on the unit axes.
func Octahedron() Shape {
	return Shape{
		Vertices: []Vec3{
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		},
		Edges: []Edge{
			{0, 2}, {2, 1}, {1, 3}, {3, 0},
			{0, 4}, {2, 4}, {1, 4}, {3, 4},
			{0, 5}, {2, 5}, {1, 5}, {3, 5},
		},
	}
}

// ShapeByName returns a compiled-in shape.
func ShapeByName(name string) (Shape, error) {
	switch name {
	case "", "cube":
		return Cube(), nil
	case "tetrahedron":
		return Tetrahedron(), nil
	case "octahedron":
		return Octahedron(), nil
	}
	return Shape{}, fmt.Errorf("unknown shape %q", name)
}
