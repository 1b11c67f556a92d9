// Command transform2d runs the ten fixed transformation exercises: it
// narrates each one to stdout, writes a before/after plot per exercise,
// and emits an HTML report. An optional JavaScript file can drive the
// geometry API directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"transform2d/exercises"
	"transform2d/geom"
	"transform2d/observability"
	"transform2d/plot"
	"transform2d/report"
	"transform2d/scripting"
)

type options struct {
	outDir     string
	withReport bool
	scriptPath string
	quiet      bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "transform2d: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "transform2d: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("transform2d", flag.ContinueOnError)
	fs.StringVar(&opts.outDir, "out", "out", "output directory for plots and the report")
	fs.BoolVar(&opts.withReport, "report", true, "write report.html")
	fs.StringVar(&opts.scriptPath, "script", "", "JavaScript file to run against the geometry API")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress console narration")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(opts options) error {
	logger := observability.NewStdLogger(os.Stderr)
	if opts.quiet {
		logger = observability.NopLogger{}
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	exs, err := exercises.All()
	if err != nil {
		return err
	}
	logger.Info("exercises loaded", observability.Int(observability.MetricExerciseCount, len(exs)))

	renderer := plot.NewRenderer()
	renderer.Logger = logger

	for _, ex := range exs {
		if !opts.quiet {
			narrate(ex)
		}
		if err := writePlot(renderer, opts.outDir, ex); err != nil {
			return fmt.Errorf("exercise %d: %w", ex.Number, err)
		}
	}

	if opts.withReport {
		html, err := report.RenderHTML(report.Build(exs))
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		path := filepath.Join(opts.outDir, "report.html")
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			return err
		}
		logger.Info("report written", observability.String("path", path))
	}

	if opts.scriptPath != "" {
		if err := runScript(opts.scriptPath, logger); err != nil {
			return fmt.Errorf("script %s: %w", opts.scriptPath, err)
		}
	}
	return nil
}

func narrate(ex exercises.Exercise) {
	fmt.Printf("--- %d. %s ---\n", ex.Number, ex.Title)
	fmt.Println(ex.Narrative)
	for i, step := range ex.Steps {
		if i == 0 {
			continue
		}
		fmt.Printf("  %s: %s\n", step.Label(), formatPoints(step.Points()))
	}
	if ex.Composed != nil {
		once := ex.Original().Apply(*ex.Composed, "composed")
		fmt.Printf("  single composed matrix: %s\n", formatPoints(once.Points()))
	}
	fmt.Println()
}

func writePlot(renderer *plot.Renderer, dir string, ex exercises.Exercise) error {
	path := filepath.Join(dir, fmt.Sprintf("exercise_%02d.png", ex.Number))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	title := fmt.Sprintf("%d. %s", ex.Number, ex.Title)
	if len(ex.Steps) > 2 {
		return renderer.RenderSequence(f, title, ex.Steps)
	}
	return renderer.RenderComparison(f, title, ex.Original(), ex.Final())
}

func runScript(path string, logger observability.Logger) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	engine := scripting.NewEngine()
	if err := engine.RegisterGeometry(scripting.DefaultAPI{Logger: logger}); err != nil {
		return err
	}
	val, err := engine.Execute(context.Background(), string(src))
	if err != nil {
		return err
	}
	if val != nil {
		fmt.Printf("script result: %v\n", val)
	}
	return nil
}

func formatPoints(points []geom.Point) string {
	out := ""
	for i, p := range points {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("(%.5g, %.5g)", p.X, p.Y)
	}
	return out
}
