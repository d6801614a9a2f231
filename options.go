package outliner

import (
	"log/slog"

	"github.com/tsawler/outliner/outline"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	pipeline  outline.Config
	overrides []outline.TitleOverride
	logger    *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pipeline: outline.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.overrides != nil {
		newOpts.overrides = make([]outline.TitleOverride, len(o.overrides))
		copy(newOpts.overrides, o.overrides)
	}
	return newOpts
}

// config assembles the pipeline configuration from the options.
func (o ExtractOptions) config() outline.Config {
	cfg := o.pipeline
	cfg.TitleOverrides = o.overrides
	if o.logger != nil {
		cfg.Logger = o.logger
	}
	return cfg
}

// WithConfig replaces the pipeline configuration. It returns a new
// Extractor; the receiver is unchanged.
func (e *Extractor) WithConfig(cfg outline.Config) *Extractor {
	newExt := e.clone()
	newExt.options.pipeline = cfg
	return newExt
}

// WithTitleOverrides supplies a known-answer title override table. It
// returns a new Extractor; the receiver is unchanged.
func (e *Extractor) WithTitleOverrides(overrides []outline.TitleOverride) *Extractor {
	newExt := e.clone()
	newExt.options.overrides = append([]outline.TitleOverride(nil), overrides...)
	return newExt
}

// WithLogger sets the logger used for per-document progress. It returns a
// new Extractor; the receiver is unchanged.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// clone creates a copy of the Extractor with deep-copied options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		options:  e.options.clone(),
	}
}
