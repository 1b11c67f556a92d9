// Package report builds a human-readable summary of the transformation
// exercises: a markdown document with the composed matrices typeset as
// display math, rendered to HTML with MathML output.
package report

import (
	"bytes"
	"fmt"
	"strings"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"

	"transform2d/exercises"
	"transform2d/geom"
)

// Build returns the markdown source of the report for the given
// exercises.
func Build(exs []exercises.Exercise) string {
	var sb strings.Builder
	sb.WriteString("# 2D geometric transformations\n\n")
	sb.WriteString("Each exercise applies one or more affine transformations, ")
	sb.WriteString("expressed as 3x3 homogeneous matrices, to a point or polygon.\n\n")

	for _, ex := range exs {
		fmt.Fprintf(&sb, "## %d. %s\n\n", ex.Number, ex.Title)
		sb.WriteString(ex.Narrative)
		sb.WriteString("\n\n")
		for i, step := range ex.Steps {
			role := "original"
			if i > 0 {
				role = fmt.Sprintf("step %d", i)
			}
			fmt.Fprintf(&sb, "- %s — %s: %s\n", role, step.Label(), formatPoints(step.Points()))
		}
		sb.WriteString("\n")
		if ex.Composed != nil {
			sb.WriteString("Pre-composed matrix applied in a single step:\n\n")
			sb.WriteString("$$" + MatrixLaTeX(*ex.Composed) + "$$\n\n")
		}
	}
	return sb.String()
}

// MatrixLaTeX renders m as a LaTeX pmatrix.
func MatrixLaTeX(m geom.Matrix) string {
	rows := make([]string, 3)
	for i := 0; i < 3; i++ {
		rows[i] = fmt.Sprintf("%s & %s & %s", num(m[i][0]), num(m[i][1]), num(m[i][2]))
	}
	return `\begin{pmatrix} ` + strings.Join(rows, ` \\ `) + ` \end{pmatrix}`
}

// RenderHTML converts report markdown (including $$ math blocks) to a
// standalone HTML page, with math emitted as MathML.
func RenderHTML(source string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			treeblood.MathML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	page.WriteString("<meta charset=\"utf-8\">\n<title>2D geometric transformations</title>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(buf.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

func formatPoints(points []geom.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("(%s, %s)", num(p.X), num(p.Y))
	}
	return strings.Join(parts, ", ")
}

// num trims float noise for presentation (e.g. 6.123e-17 -> 0).
func num(v float64) string {
	if v > -1e-12 && v < 1e-12 {
		v = 0
	}
	return fmt.Sprintf("%.6g", v)
}
