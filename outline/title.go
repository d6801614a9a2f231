package outline

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// TitleOverride maps a substring of a synthesized title to a fixed
// replacement. Overrides are supplied by the caller for documents whose
// titles are known in advance; the synthesizer itself stays heuristic.
type TitleOverride struct {
	Contains string `json:"contains" yaml:"contains"`
	Title    string `json:"title" yaml:"title"`
}

// TitleConfig holds configuration for title synthesis.
type TitleConfig struct {
	// SizeWindow is the fraction of the page's maximum font size a
	// fragment must reach to be a title candidate. Titles often span
	// several differently sized runs, so the window is tolerant.
	SizeWindow float64

	// MinCandidateLength is the minimum cleaned text length (in runes,
	// exclusive) for a candidate
	MinCandidateLength int
}

// DefaultTitleConfig returns the standard title synthesis configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		SizeWindow:         0.8,
		MinCandidateLength: 3,
	}
}

// Boilerplate prefixes that large first-page text sometimes carries but
// titles never legitimately start with.
var (
	pageHeaderRE = regexp.MustCompile(`^(Page|Página|Seite)\s*\d+`)
	copyrightRE  = regexp.MustCompile(`^(Copyright|©|All rights reserved)`)
	dashOnlyRE   = regexp.MustCompile(`^-+$`)
)

// TitleSynthesizer derives a document title from first-page fragments,
// independently of heading classification.
type TitleSynthesizer struct {
	config    TitleConfig
	overrides []TitleOverride
}

// NewTitleSynthesizer creates a synthesizer with default configuration.
func NewTitleSynthesizer() *TitleSynthesizer {
	return &TitleSynthesizer{config: DefaultTitleConfig()}
}

// NewTitleSynthesizerWithConfig creates a synthesizer with custom
// configuration and an optional override table.
func NewTitleSynthesizerWithConfig(config TitleConfig, overrides []TitleOverride) *TitleSynthesizer {
	return &TitleSynthesizer{config: config, overrides: overrides}
}

// Synthesize builds the document title from the given first-page fragments.
// It returns the empty string when no fragment qualifies.
func (t *TitleSynthesizer) Synthesize(firstPage []model.Fragment) string {
	if len(firstPage) == 0 {
		return ""
	}

	largest := 0.0
	for _, f := range firstPage {
		if f.FontSize > largest {
			largest = f.FontSize
		}
	}

	type candidate struct {
		text       string
		y, x       float64
		emphasized bool
	}

	var candidates []candidate
	for _, f := range firstPage {
		if f.FontSize < largest*t.config.SizeWindow {
			continue
		}
		text := CleanText(f.Text)
		if text == "" || utf8.RuneCountInString(text) <= t.config.MinCandidateLength {
			continue
		}
		candidates = append(candidates, candidate{
			text:       text,
			y:          f.Y,
			x:          f.X,
			emphasized: f.Emphasized,
		})
	}

	if len(candidates) == 0 {
		return ""
	}

	// Top to bottom; X breaks ties for runs on the same baseline
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].y != candidates[j].y {
			return candidates[i].y < candidates[j].y
		}
		return candidates[i].x < candidates[j].x
	})

	// Bold text is more title-like than plain large text: if any
	// candidate is emphasized, build the title from those alone.
	anyEmphasized := false
	for _, c := range candidates {
		if c.emphasized {
			anyEmphasized = true
			break
		}
	}

	var parts []string
	for _, c := range candidates {
		if anyEmphasized && !c.emphasized {
			continue
		}
		parts = append(parts, c.text)
	}

	title := CleanForOutput(strings.Join(parts, " "))
	title = pageHeaderRE.ReplaceAllString(title, "")
	title = copyrightRE.ReplaceAllString(title, "")
	title = dashOnlyRE.ReplaceAllString(title, "")

	for _, o := range t.overrides {
		if o.Contains != "" && strings.Contains(title, o.Contains) {
			return o.Title
		}
	}

	return title
}
