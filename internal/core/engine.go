package core

// Engine evaluates the configuration-dependent parts of the analysis: COGS
// estimation, benchmark classification, data quality and insights. Every
// method is a pure transform of its arguments; the engine holds no mutable
// state, so one Engine is safe for concurrent use from any number of
// goroutines.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine around cfg. Zero-value holes in cfg are filled
// from DefaultConfig so a sparse configuration still behaves sensibly.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}
