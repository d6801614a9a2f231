// Package match scores a candidate outline against a reference outline.
//
// [Headings] performs two-phase greedy bipartite matching: an exact pass
// on (level, normalized text), then a similarity pass over the remainder.
// [Similarity] is a difflib-style character-sequence ratio in [0, 1].
// The package is independent of how either outline was produced.
package match
