package match

import (
	"regexp"
	"strings"
)

var collapseRE = regexp.MustCompile(`\s+`)

// NormalizeForComparison prepares text for matching: whitespace is
// collapsed, space-before-punctuation artifacts are dropped, and the
// result is lower-cased. Two headings that normalize equally are
// considered identical.
func NormalizeForComparison(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = collapseRE.ReplaceAllString(strings.TrimSpace(text), " ")
	text = strings.ReplaceAll(text, " ,", ",")
	text = strings.ReplaceAll(text, " .", ".")
	return strings.ToLower(text)
}

// Similarity returns a character-sequence similarity ratio in [0, 1]
// between two texts after normalization. Two empty texts are identical
// (1.0); one empty text matches nothing (0.0).
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return ratio([]rune(NormalizeForComparison(a)), []rune(NormalizeForComparison(b)))
}

// ratio computes 2*M/T where M is the total length of the matching blocks
// between a and b, and T is the combined length. Matching blocks are found
// by recursively locating the longest common substring and matching the
// regions to its left and right, the same way difflib's SequenceMatcher
// scores sequences.
func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}

	matched := 0
	type region struct{ alo, ahi, blo, bhi int }
	queue := []region{{0, len(a), 0, len(b)}}

	for len(queue) > 0 {
		r := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(a, b, r.alo, r.ahi, r.blo, r.bhi)
		if size == 0 {
			continue
		}
		matched += size

		if r.alo < i && r.blo < j {
			queue = append(queue, region{r.alo, i, r.blo, j})
		}
		if i+size < r.ahi && j+size < r.bhi {
			queue = append(queue, region{i + size, r.ahi, j + size, r.bhi})
		}
	}

	return 2 * float64(matched) / float64(total)
}

// longestMatch finds the longest matching block within a[alo:ahi] and
// b[blo:bhi]. Among equally long blocks it returns the one starting
// earliest in a, then earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// b2j maps each rune to its positions within b[blo:bhi]
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	// j2len[j] is the length of the match ending at a[i-1], b[j-1]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
