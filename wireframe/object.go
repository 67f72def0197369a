package wireframe

// Object is a renderable shape with a mutable orientation and size.
//
// Rotation and Scale may be changed freely between Render calls.
type Object struct {
	// Rotation holds the angles (radians) about X, Y and Z.
	Rotation Vec3
	// Scale is a uniform factor applied before rotation.
	Scale float64

	vertices []Vec3
	edges    []Edge

	// projection is rebuilt in full by every Render.
	projection []Vec3

	rotate Rotator
	angles AnglePolicy
}

// NewObject creates an object for a shape.
//
// The shape's slices are kept as-is, not copied or validated; the caller must
// not modify them afterwards. Use Shape.Validate first for untrusted shapes:
// a bad edge index panics during Render.
func NewObject(s Shape) *Object {
	return &Object{
		Scale:      1,
		vertices:   s.Vertices,
		edges:      s.Edges,
		projection: make([]Vec3, len(s.Vertices)),
		rotate:     Rotate,
		angles:     AngleUnbounded,
	}
}

// SetRotator replaces the rotation function. nil restores Rotate.
func (o *Object) SetRotator(r Rotator) {
	if r == nil {
		r = Rotate
	}
	o.rotate = r
}

func (o *Object) SetAnglePolicy(p AnglePolicy) { o.angles = p }
func (o *Object) AnglePolicy() AnglePolicy     { return o.angles }

// Shape returns the object's shape. The slices are shared and must be treated as read-only.
func (o *Object) Shape() Shape { return Shape{Vertices: o.vertices, Edges: o.edges} }

// Spin advances Rotation by delta and applies the angle policy.
func (o *Object) Spin(delta Vec3) {
	o.Rotation = o.angles.Apply(o.Rotation.Add(delta))
}

// Projected returns the cached position of vertex i from the last Render.
func (o *Object) Projected(i int) Vec3 { return o.projection[i] }

// Render recomputes the projection and draws every edge onto s.
func (o *Object) Render(s Surface) {
	o.updateProjection()
	o.draw(s)
}

func (o *Object) updateProjection() {
	for i, v := range o.vertices {
		o.projection[i] = o.rotate(v.Scale(o.Scale), o.Rotation)
	}
}

func (o *Object) draw(s Surface) {
	w, h := s.Size()
	cx, cy := w/2, h/2
	for _, e := range o.edges {
		a := o.projection[e.A]
		b := o.projection[e.B]
		s.DrawLine(int(a.X)+cx, int(a.Y)+cy, int(b.X)+cx, int(b.Y)+cy, On)
	}
}
