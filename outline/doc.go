// Package outline infers a document title and a hierarchical H1-H3 heading
// outline from styled text fragments.
//
// The pipeline runs strictly in sequence per document:
//
//	stats := outline.BuildFontStatistics(fragments)  // body size baseline
//	score := scorer.Score(text)                      // multi-signal text score
//	level, ok := classifier.Level(...)               // H1/H2/H3 decision
//	headings = reconciler.Reconcile(candidates)      // merge/filter/nest
//
// [Extractor] orchestrates all stages:
//
//	result := outline.New().Extract(pages)
//
// # Detection strategy
//
// Scoring deliberately errs toward over-detection (the candidacy bar is
// low); precision comes from the reconciler, which merges split fragments,
// drops noise and duplicates, and enforces parent-before-child nesting.
// Explicit numeric prefixes ("2.1 Scope") override font-based inference.
//
// # Preconditions
//
// Fragment positions must approximate reading order under a (page, Y, X)
// sort; the merge pass depends on candidates arriving in true reading
// order, and degrades when the upstream reader cannot guarantee it.
package outline
