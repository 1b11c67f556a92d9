package scripting

import (
	"context"

	"transform2d/geom"
	"transform2d/observability"
)

// Engine represents a scripting engine (e.g., JavaScript) driving the
// transformation core.
type Engine interface {
	// Execute runs a script and returns its final value.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterGeometry registers the geometry API with the engine.
	RegisterGeometry(api GeometryAPI) error
}

// GeometryAPI exposes shape construction and narration to scripts. It is
// the untyped boundary of the core: coordinate rows are validated here
// and malformed ones surface as script exceptions.
type GeometryAPI interface {
	// NewShape builds a shape from raw (x, y) rows.
	NewShape(rows [][]float64, label string) (geom.Shape, error)

	// Log emits a narration line from the script.
	Log(msg string)
}

// DefaultAPI is the standard GeometryAPI backed by the geom package.
type DefaultAPI struct {
	Logger observability.Logger
}

func (a DefaultAPI) NewShape(rows [][]float64, label string) (geom.Shape, error) {
	return geom.ShapeFromRows(rows, label)
}

func (a DefaultAPI) Log(msg string) {
	logger := a.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}
	logger.Info(msg, observability.String("source", "script"))
}
