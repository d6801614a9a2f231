package outline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// ReconcilerConfig holds configuration for the reconciliation passes.
type ReconcilerConfig struct {
	// MinTextLength drops headings whose trimmed text is shorter than
	// this many runes
	MinTextLength int

	// Boilerplate terms disqualify a heading when present anywhere in
	// its lowercased text (repeated page headers, legal footers)
	Boilerplate []string
}

// DefaultReconcilerConfig returns the standard reconciler configuration.
func DefaultReconcilerConfig() ReconcilerConfig {
	return ReconcilerConfig{
		MinTextLength: 3,
		Boilerplate: []string{
			"page", "página", "seite", "copyright", "confidential", "draft",
		},
	}
}

var (
	numericOnlyRE = regexp.MustCompile(`^\d+$`)
	dashUnderRE   = regexp.MustCompile(`^[-_]+$`)
)

// Reconciler converts raw per-fragment heading decisions into a consistent
// outline: it merges split headings, removes noise and duplicates, and
// enforces strict parent-before-child nesting.
type Reconciler struct {
	config ReconcilerConfig
}

// NewReconciler creates a reconciler with default configuration.
func NewReconciler() *Reconciler {
	return &Reconciler{config: DefaultReconcilerConfig()}
}

// NewReconcilerWithConfig creates a reconciler with custom configuration.
func NewReconcilerWithConfig(config ReconcilerConfig) *Reconciler {
	return &Reconciler{config: config}
}

// Reconcile runs the merge, filter, and hierarchy passes in order.
// Candidates must arrive in page/reading order; merge correctness depends
// on it.
func (r *Reconciler) Reconcile(candidates []model.Heading) []model.Heading {
	merged := r.Merge(candidates)
	filtered := r.Filter(merged)
	return r.EnforceHierarchy(filtered)
}

// Merge joins consecutive candidates with identical level and page by
// concatenating their text with a space. Headings rendered as several
// styled runs arrive as several candidates; this recovers them. Merging
// an already-merged sequence is a no-op.
func (r *Reconciler) Merge(candidates []model.Heading) []model.Heading {
	if len(candidates) == 0 {
		return nil
	}

	merged := make([]model.Heading, 0, len(candidates))
	current := candidates[0]

	for _, h := range candidates[1:] {
		if h.Level == current.Level && h.Page == current.Page {
			current.Text += " " + h.Text
			continue
		}
		merged = append(merged, current)
		current = h
	}

	return append(merged, current)
}

// Filter drops noise headings and deduplicates by (level, lowercased text),
// keeping the first occurrence. Noise is purely numeric text, text shorter
// than the minimum length, dash/underscore-only runs, and anything carrying
// a boilerplate term.
func (r *Reconciler) Filter(headings []model.Heading) []model.Heading {
	seen := make(map[string]struct{}, len(headings))
	filtered := make([]model.Heading, 0, len(headings))

	for _, h := range headings {
		trimmed := strings.TrimSpace(h.Text)

		if numericOnlyRE.MatchString(trimmed) || utf8.RuneCountInString(trimmed) < r.config.MinTextLength {
			continue
		}
		if dashUnderRE.MatchString(trimmed) {
			continue
		}

		lower := strings.ToLower(h.Text)
		if r.containsBoilerplate(lower) {
			continue
		}

		key := h.Level.String() + "\x00" + lower
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		filtered = append(filtered, h)
	}

	return filtered
}

func (r *Reconciler) containsBoilerplate(lower string) bool {
	for _, term := range r.config.Boilerplate {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// EnforceHierarchy keeps only headings whose required ancestor context
// exists: an H1 always survives and resets the context, an H2 needs a
// preceding H1, and an H3 needs a preceding H2 under the current H1.
// The result never contains an orphaned H2 or H3.
func (r *Reconciler) EnforceHierarchy(headings []model.Heading) []model.Heading {
	final := make([]model.Heading, 0, len(headings))
	haveH1 := false
	haveH2 := false

	for _, h := range headings {
		switch h.Level {
		case model.LevelH1:
			haveH1 = true
			haveH2 = false
			final = append(final, h)
		case model.LevelH2:
			if haveH1 {
				haveH2 = true
				final = append(final, h)
			}
		case model.LevelH3:
			if haveH2 {
				final = append(final, h)
			}
		}
	}

	return final
}
