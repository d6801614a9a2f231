// Package outliner infers document titles and hierarchical H1-H3 heading
// outlines from typographic signals, and scores candidate outlines against
// reference ones.
//
// Basic usage:
//
//	result, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := outliner.Open("report.pdf").
//	    WithTitleOverrides(overrides).
//	    Outline()
//
// Callers that already hold fragments (for example from a different
// document reader) can bypass file handling entirely:
//
//	result := outliner.ExtractFragments(pages)
//
// For evaluation, see the match and eval packages.
package outliner

import (
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
	"github.com/tsawler/outliner/reader"
)

// Extractor provides a fluent interface for extracting an outline from a
// document. Each configuration method returns a new Extractor instance,
// making chains safe to fork and reuse.
type Extractor struct {
	filename string
	options  ExtractOptions
}

// Open prepares a PDF file for outline extraction. No I/O happens until a
// terminal operation like Outline() is called.
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Outline runs the full pipeline and returns the inferred outline. A
// readable document with no text yields an empty outline, not an error.
func (e *Extractor) Outline() (model.Outline, error) {
	r, err := reader.Open(e.filename)
	if err != nil {
		return model.NewOutline(), err
	}
	defer r.Close()

	pages, err := r.AllFragments()
	if err != nil {
		return model.NewOutline(), err
	}

	return outline.NewWithConfig(e.options.config()).Extract(pages), nil
}

// ExtractFragments runs the pipeline over fragments the caller already
// holds, keyed by 1-based page number, using the default configuration.
func ExtractFragments(pages map[int][]model.Fragment) model.Outline {
	return outline.New().Extract(pages)
}
