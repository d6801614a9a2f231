package model

import "sort"

// Fragment represents a unit of styled text produced by a document reader.
// It carries the typographic signals the classification pipeline works from:
// font size, emphasis, page number, and position on the page.
type Fragment struct {
	// Text is the raw text content of the fragment
	Text string

	// FontSize is the rendered font size in points
	FontSize float64

	// Emphasized indicates bold or otherwise visually emphasized text
	Emphasized bool

	// Page is the 1-based page number the fragment appears on
	Page int

	// X and Y are the fragment's position on the page. Y increases
	// downward so that ascending Y approximates reading order.
	X, Y float64
}

// SortReadingOrder sorts fragments in approximate reading order:
// top to bottom, then left to right. The sort is stable so fragments
// at identical positions keep their arrival order.
func SortReadingOrder(fragments []Fragment) {
	sort.SliceStable(fragments, func(i, j int) bool {
		if fragments[i].Y != fragments[j].Y {
			return fragments[i].Y < fragments[j].Y
		}
		return fragments[i].X < fragments[j].X
	})
}
