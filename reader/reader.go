package reader

import (
	"fmt"
	"os"
	"strings"

	"rsc.io/pdf"

	"github.com/tsawler/outliner/model"
)

// defaultPageHeight is used when a page carries no usable MediaBox.
// US Letter in points.
const defaultPageHeight = 792.0

// Reader reads text fragments from a PDF file.
type Reader struct {
	file *os.File
	doc  *pdf.Reader
}

// Open opens a PDF file for fragment extraction. The returned Reader must
// be closed when done.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat PDF: %w", err)
	}

	doc, err := pdf.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parse PDF: %w", err)
	}

	return &Reader{file: f, doc: doc}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.doc.NumPage()
}

// PageFragments extracts the fragments of one page (1-based). Pages that
// cannot be decoded yield no fragments rather than failing the document.
func (r *Reader) PageFragments(pageNum int) ([]model.Fragment, error) {
	if pageNum < 1 || pageNum > r.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range [1, %d]", pageNum, r.doc.NumPage())
	}

	page := r.doc.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	return assembleFragments(page.Content().Text, pageHeight(page), pageNum), nil
}

// AllFragments extracts fragments for every page, keyed by 1-based page
// number. Pages without text are omitted from the map.
func (r *Reader) AllFragments() (map[int][]model.Fragment, error) {
	pages := make(map[int][]model.Fragment)

	for pageNum := 1; pageNum <= r.doc.NumPage(); pageNum++ {
		fragments, err := r.PageFragments(pageNum)
		if err != nil {
			return nil, err
		}
		if len(fragments) > 0 {
			pages[pageNum] = fragments
		}
	}

	return pages, nil
}

// pageHeight reads the page's MediaBox height, walking up the page tree
// when the box is inherited.
func pageHeight(page pdf.Page) float64 {
	v := page.V
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() && box.Len() == 4 {
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

// assembleFragments groups rsc.io/pdf's per-glyph text runs into styled
// fragments. Runs stay in one fragment while the font, size, and baseline
// hold and the horizontal gap is small; a mid-size gap inserts a space, a
// large gap starts a new fragment. Y is flipped to increase downward.
func assembleFragments(texts []pdf.Text, height float64, pageNum int) []model.Fragment {
	var fragments []model.Fragment

	var (
		sb       strings.Builder
		cur      pdf.Text // style and baseline of the open run
		endX     float64  // right edge of the open run
		open     bool
		startX   float64
		baseline float64
	)

	flush := func() {
		if !open {
			return
		}
		text := sb.String()
		if strings.TrimSpace(text) != "" {
			fragments = append(fragments, model.Fragment{
				Text:       text,
				FontSize:   cur.FontSize,
				Emphasized: isBoldFont(cur.Font),
				Page:       pageNum,
				X:          startX,
				Y:          height - baseline,
			})
		}
		sb.Reset()
		open = false
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		if open {
			sameStyle := t.Font == cur.Font && abs(t.FontSize-cur.FontSize) < 0.1
			sameLine := abs(t.Y-baseline) <= cur.FontSize*0.2
			gap := t.X - endX

			switch {
			case !sameStyle || !sameLine || gap > cur.FontSize*1.5 || gap < -cur.FontSize:
				flush()
			case gap >= cur.FontSize*0.13:
				sb.WriteString(" ")
			}
		}

		if !open {
			cur = t
			startX = t.X
			baseline = t.Y
			open = true
		}
		sb.WriteString(t.S)
		endX = t.X + t.W
	}
	flush()

	return fragments
}

// boldIndicators are font name markers for emphasized text.
var boldIndicators = []string{"bold", "bld", "black", "heavy", "demibold", "semibold", "medium"}

// isBoldFont reports whether a font name indicates bold or similarly
// emphasized text.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, indicator := range boldIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
