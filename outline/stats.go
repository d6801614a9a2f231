package outline

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// DefaultBodySize is the body text size assumed when a document carries
// no usable font metadata.
const DefaultBodySize = 12.0

// maxTiers caps how many font size clusters are distinguished. Documents
// rarely encode more than three meaningful heading sizes.
const maxTiers = 3

// Tier is a cluster of observed font sizes presumed to correspond to one
// heading level or to body text.
type Tier struct {
	// Sizes are the distinct font sizes in this tier, descending
	Sizes []float64
}

// Mean returns the mean of the tier's sizes, or 0 for an empty tier.
func (t Tier) Mean() float64 {
	if len(t.Sizes) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range t.Sizes {
		sum += s
	}
	return sum / float64(len(t.Sizes))
}

// FontStatistics holds the document-wide typography baseline derived once
// per document from all fragments with a positive font size.
type FontStatistics struct {
	// MedianBodySize is the median of all positive font sizes, or
	// DefaultBodySize when no fragment has one
	MedianBodySize float64

	// Tiers are font size clusters ordered by descending mean size,
	// largest cluster first (presumed top heading tier)
	Tiers []Tier
}

// BuildFontStatistics derives font statistics from a document's fragments.
// It never fails: documents with no usable sizes fall back to
// DefaultBodySize, and uniform typography degenerates to a single tier.
func BuildFontStatistics(fragments []model.Fragment) FontStatistics {
	var sizes []float64
	for _, f := range fragments {
		if f.FontSize > 0 {
			sizes = append(sizes, f.FontSize)
		}
	}

	if len(sizes) == 0 {
		return FontStatistics{MedianBodySize: DefaultBodySize}
	}

	sort.Float64s(sizes)

	return FontStatistics{
		MedianBodySize: median(sizes),
		Tiers:          clusterSizes(distinct(sizes)),
	}
}

// median returns the median of a sorted, non-empty slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// distinct collapses a sorted slice to its distinct values.
func distinct(sorted []float64) []float64 {
	out := sorted[:0:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// clusterSizes partitions distinct ascending sizes into at most maxTiers
// clusters by magnitude, splitting at the largest gaps between consecutive
// sizes. Fewer than four distinct sizes form a single tier.
func clusterSizes(sizes []float64) []Tier {
	if len(sizes) == 0 {
		return nil
	}
	if len(sizes) < 4 {
		return []Tier{{Sizes: descending(sizes)}}
	}

	// Rank the gaps between consecutive sizes, largest first
	type gap struct {
		index int // split before sizes[index]
		width float64
	}
	gaps := make([]gap, 0, len(sizes)-1)
	for i := 1; i < len(sizes); i++ {
		gaps = append(gaps, gap{index: i, width: sizes[i] - sizes[i-1]})
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i].width > gaps[j].width })

	// Split at the maxTiers-1 widest gaps
	splits := make([]int, 0, maxTiers-1)
	for _, g := range gaps[:maxTiers-1] {
		splits = append(splits, g.index)
	}
	sort.Ints(splits)

	var tiers []Tier
	start := 0
	for _, split := range splits {
		tiers = append(tiers, Tier{Sizes: descending(sizes[start:split])})
		start = split
	}
	tiers = append(tiers, Tier{Sizes: descending(sizes[start:])})

	// Order tiers by descending mean so the largest cluster comes first
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Mean() > tiers[j].Mean() })

	return tiers
}

// descending returns a copy of the slice sorted largest first.
func descending(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	copy(out, sizes)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}
