package rec

import (
	"fmt"

	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/algo/reverse"
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/metrics"
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/model"
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Config carries the pre-validated invocation parameters.
// Range checks happen at the parameter surface, the engine trusts its input.
type Config struct {
	ClassA   int
	ClassB   int
	Places   int
	Accuracy float64
	Targets  model.Targets
}

// Engine stitches the band discovery, the enumeration and the metric filter
// together, streaming every accepted matrix to the sink in enumeration order.
type Engine struct {
	id   string
	cfg  Config
	sink storage.Sink
}

// NewEngine creates an engine for the given parameters and sink.
func NewEngine(cfg Config, sink storage.Sink) *Engine {
	return &Engine{
		id:   uuid.New().String(),
		cfg:  cfg,
		sink: sink,
	}
}

// Run executes one full search.
// An infeasible accuracy is an informational outcome, not an error :
// the sink sees no records and Run returns nil.
// A sink write failure aborts the run, there are no retries.
func (e *Engine) Run() error {
	total := e.cfg.ClassA + e.cfg.ClassB

	band := reverse.FindBand(total, e.cfg.Accuracy, e.cfg.Places)
	if !band.Feasible() {
		log.Info().
			Str("id", e.id).
			Float64("accuracy", e.cfg.Accuracy).
			Int("total", total).
			Msg("there are no combinations that can achieve this accuracy")
		return nil
	}

	log.Debug().
		Str("id", e.id).
		Int("max-correct", band.MaxCorrect).
		Int("min-correct", band.MinCorrect).
		Int("combinations", band.Width()).
		Msg("feasible band found")

	var writeErr error
	generated := 0
	accepted := 0
	reverse.NewEnumerator(e.cfg.ClassA, e.cfg.ClassB, band).Each(func(m model.ConfusionMatrix) bool {
		generated++
		metrics.Observer.Increment(metrics.Generated)

		if !e.cfg.Targets.Match(m, e.cfg.Places) {
			metrics.Observer.Increment(metrics.Rejected)
			return true
		}
		metrics.Observer.Increment(metrics.Accepted)

		if err := e.sink.Write(model.Record{
			Matrix:   m,
			Accuracy: e.cfg.Accuracy,
			Targets:  e.cfg.Targets,
		}); err != nil {
			writeErr = fmt.Errorf("could not write matrix '%+v': %w", m, err)
			return false
		}
		accepted++
		return true
	})
	if writeErr != nil {
		return writeErr
	}

	log.Info().
		Str("id", e.id).
		Int("generated", generated).
		Int("accepted", accepted).
		Msg("search finished")
	return nil
}
