package outline

import (
	"log/slog"
	"sort"

	"github.com/tsawler/outliner/model"
)

// Config aggregates the configuration of every pipeline stage. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	Score      ScoreConfig
	Classifier ClassifierConfig
	Title      TitleConfig
	Reconciler ReconcilerConfig

	// TitleOverrides is an optional caller-supplied table of known-answer
	// title corrections
	TitleOverrides []TitleOverride

	// Logger for per-document progress; defaults to slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Score:      DefaultScoreConfig(),
		Classifier: DefaultClassifierConfig(),
		Title:      DefaultTitleConfig(),
		Reconciler: DefaultReconcilerConfig(),
	}
}

// Extractor runs the full inference pipeline for one document at a time:
// font statistics, structural scoring, level classification, title
// synthesis, and reconciliation. An Extractor holds no per-document state
// and is safe to share across goroutines processing different documents.
type Extractor struct {
	config     Config
	scorer     *Scorer
	classifier *Classifier
	title      *TitleSynthesizer
	reconciler *Reconciler
	logger     *slog.Logger
}

// New creates an extractor with the default configuration.
func New() *Extractor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an extractor with custom configuration.
func NewWithConfig(config Config) *Extractor {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Extractor{
		config:     config,
		scorer:     NewScorerWithConfig(config.Score),
		classifier: NewClassifierWithConfig(config.Classifier),
		title:      NewTitleSynthesizerWithConfig(config.Title, config.TitleOverrides),
		reconciler: NewReconcilerWithConfig(config.Reconciler),
		logger:     logger,
	}
}

// Extract infers the title and heading outline from a document's fragments,
// keyed by 1-based page number. A document with no fragments yields an
// empty-title, empty-outline result rather than an error.
func (e *Extractor) Extract(pages map[int][]model.Fragment) model.Outline {
	outline := model.NewOutline()

	var all []model.Fragment
	for _, fragments := range pages {
		all = append(all, fragments...)
	}
	if len(all) == 0 {
		e.logger.Debug("no text fragments; returning empty outline")
		return outline
	}

	stats := BuildFontStatistics(all)

	outline.Title = e.title.Synthesize(pages[1])

	pageNumbers := make([]int, 0, len(pages))
	for p := range pages {
		pageNumbers = append(pageNumbers, p)
	}
	sort.Ints(pageNumbers)

	var candidates []model.Heading
	for _, pageNum := range pageNumbers {
		fragments := append([]model.Fragment(nil), pages[pageNum]...)
		model.SortReadingOrder(fragments)

		for _, f := range fragments {
			text := CleanText(f.Text)
			if text == "" {
				continue
			}

			score := e.scorer.Score(text)
			level, ok := e.classifier.Level(f.FontSize, stats, f.Emphasized, text, score)
			if !ok {
				continue
			}

			candidates = append(candidates, model.Heading{
				Level: level,
				Text:  CleanForOutput(text),
				Page:  pageNum - 1, // emitted pages are 0-based
			})
		}
	}

	outline.Headings = e.reconciler.Reconcile(candidates)
	if outline.Headings == nil {
		outline.Headings = []model.Heading{}
	}

	e.logger.Debug("outline extracted",
		"headings", len(outline.Headings),
		"title_len", len(outline.Title),
		"body_size", stats.MedianBodySize)

	return outline
}
