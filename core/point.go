package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}
