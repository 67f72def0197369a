// Package wireframe turns a fixed polyhedron into 2D line segments every frame.
//
// Pipeline (fixed):
//
//	vertices → scale → rotate (X, then Y, then Z) → drop Z → center on surface → DrawLine per edge.
//
// The projection is orthographic. There is no clipping, depth sorting or
// anti-aliasing: whatever lands outside the surface is the surface's problem.
//
// Objects are not safe for concurrent use. Callers that mutate Rotation or Scale
// from another goroutine must serialize those writes against Render.
package wireframe
