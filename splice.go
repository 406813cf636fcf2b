package splice

import (
	"log/slog"

	"github.com/aretw0/splice/internal/logging"
	"github.com/aretw0/splice/internal/runtime"
	"github.com/aretw0/splice/pkg/domain"
	"github.com/aretw0/splice/pkg/model"
	"github.com/aretw0/splice/pkg/trace"
)

// Version is the current release of splice.
var Version = "0.2.0"

// Engine is the high-level entry point for the splice library.
// It wraps the internal solver and provides a simplified API for consumers.
type Engine struct {
	model  *model.Model
	solver *runtime.Solver
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithModel injects a custom transducer model, bypassing the built-in table.
func WithModel(m *model.Model) Option {
	return func(e *Engine) {
		e.model = m
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new splice Engine. By default it uses the built-in
// four-state model and a no-op logger.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.model == nil {
		eng.model = model.Default()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	eng.solver = runtime.NewSolver(eng.model, eng.logger)
	return eng
}

// Solve decodes a raw trace and returns the cheapest way to extend the model
// so that it reproduces the trace exactly. Non-binary runes in the trace are
// ignored; after filtering, its length must be a multiple of 3.
func (e *Engine) Solve(raw string) (*domain.Completion, error) {
	steps, err := trace.Decode(raw)
	if err != nil {
		return nil, err
	}
	return e.solver.Solve(steps)
}

// Model returns the predefined transducer model the engine searches over.
func (e *Engine) Model() *model.Model {
	return e.model
}
