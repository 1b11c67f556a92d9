// Package observability provides the logging facade used across the
// module. Library packages accept a Logger and default to NopLogger; the
// CLI wires in the writer-backed implementation.
package observability

import (
	"fmt"
	"io"
	"log"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field          { return stringField{key, value} }
func Int(key string, value int) Field         { return intField{key, value} }
func Float64(key string, value float64) Field { return float64Field{key, value} }
func Error(key string, err error) Field       { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// stdLogger writes level-prefixed lines with key=value fields appended.
type stdLogger struct {
	l     *log.Logger
	bound []Field
}

// NewStdLogger returns a Logger writing to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

func (s *stdLogger) log(level, msg string, fields []Field) {
	line := level + " " + msg
	for _, f := range s.bound {
		line += fmt.Sprintf(" %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key(), f.Value())
	}
	s.l.Println(line)
}

func (s *stdLogger) Debug(msg string, fields ...Field) { s.log("DEBUG", msg, fields) }
func (s *stdLogger) Info(msg string, fields ...Field)  { s.log("INFO", msg, fields) }
func (s *stdLogger) Warn(msg string, fields ...Field)  { s.log("WARN", msg, fields) }
func (s *stdLogger) Error(msg string, fields ...Field) { s.log("ERROR", msg, fields) }

func (s *stdLogger) With(fields ...Field) Logger {
	bound := make([]Field, 0, len(s.bound)+len(fields))
	bound = append(bound, s.bound...)
	bound = append(bound, fields...)
	return &stdLogger{l: s.l, bound: bound}
}

// Standard metric names emitted by the module.
const (
	MetricTransformTime = "transform.apply.duration"
	MetricPlotTime      = "plot.render.duration"
	MetricReportTime    = "report.render.duration"
	MetricExerciseCount = "exercises.count"
	MetricShapePoints   = "shape.points.count"
)
