// Package reader adapts PDF files into the fragment model consumed by the
// outline pipeline.
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	pages, err := r.AllFragments()
//
// Each page yields fragments carrying text, font size, an emphasis flag
// derived from the font name, and a position with Y increasing downward so
// that a (Y, X) sort approximates reading order. PDF decoding itself is
// delegated to rsc.io/pdf; this package only assembles its per-glyph text
// runs into fragments.
package reader
