// Package common - Shared geometry and class vocabulary for scoring.
package common

import "fmt"

// Box is an axis-aligned bounding box in image pixel space with the
// origin at the top-left corner. (X1, Y1) is the top-left corner and
// (X2, Y2) the bottom-right corner.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// String formats the box coordinates for display.
func (b Box) String() string {
	return fmt.Sprintf("(%.2f, %.2f), (%.2f, %.2f)", b.X1, b.Y1, b.X2, b.Y2)
}

// Area returns the box area in square pixels.
func (b Box) Area() float64 {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// Larger reports whether b covers strictly more area than other.
// An exact-area tie satisfies neither Larger nor Smaller.
func (b Box) Larger(other Box) bool {
	return b.Area() > other.Area()
}

// Smaller reports whether b covers strictly less area than other.
func (b Box) Smaller(other Box) bool {
	return b.Area() < other.Area()
}

// RightOf reports whether b sits to the right of other, judged by the
// right edges alone.
func (b Box) RightOf(other Box) bool {
	return b.X2 > other.X2
}

// LeftOf reports whether b sits to the left of other, judged by the
// left edges alone.
func (b Box) LeftOf(other Box) bool {
	return b.X1 < other.X1
}

// Above reports whether b sits above other. The check is permissive:
// either edge being higher counts, so a box overlapping vertically
// while extending upward still qualifies.
func (b Box) Above(other Box) bool {
	return b.Y1 < other.Y1 || b.Y2 < other.Y2
}

// Below reports whether b sits below other, the mirror of Above.
func (b Box) Below(other Box) bool {
	return b.Y2 > other.Y2 || b.Y1 > other.Y1
}

// Between reports whether b lies between the two anchor boxes, either
// horizontally or vertically. Four orientation combinations are tried
// and the first that holds wins, so the check is symmetric in the two
// anchors.
func (b Box) Between(first, second Box) bool {
	if b.RightOf(first) && b.LeftOf(second) {
		return true
	}
	if b.LeftOf(first) && b.RightOf(second) {
		return true
	}
	if b.Below(first) && b.Above(second) {
		return true
	}
	if b.Above(first) && b.Below(second) {
		return true
	}
	return false
}
