// Package model provides the data types shared by the extraction pipeline.
//
// [Fragment] is the input side: a positioned run of uniformly styled text
// pulled from a document page. [Heading], [Level], and [Outline] are the
// output side: the inferred document structure.
//
// # Fragments
//
// Fragments carry the typographic signals the pipeline classifies on:
//
//	f := model.Fragment{
//	    Text:       "1. Introduction",
//	    FontSize:   14,
//	    Emphasized: true,
//	    Page:       1,
//	}
//
// Fragment pages are 1-based; [SortReadingOrder] orders fragments top to
// bottom, then left to right, within a page.
//
// # Outlines
//
// An [Outline] serializes to the interchange form consumed by the eval
// package, with headings under the "outline" key and levels as "H1"
// through "H3". Outline pages are 0-based.
package model
