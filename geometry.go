package dragonfly

import "golang.org/x/image/math/f32"

// Vec2 is a 2D vector, used for sizes and offsets.
type Vec2 = f32.Vec2

// Pos2 is a 2D point in page coordinates.
type Pos2 = f32.Vec2

// V creates a vector (x, y).
func V(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns a + b.
func Add(a, b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}
