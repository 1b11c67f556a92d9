package report

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"transform2d/exercises"
	"transform2d/geom"
)

func TestBuildContainsAllExercises(t *testing.T) {
	exs, err := exercises.All()
	if err != nil {
		t.Fatal(err)
	}
	md := Build(exs)
	for _, ex := range exs {
		if !strings.Contains(md, ex.Title) {
			t.Fatalf("markdown missing title %q", ex.Title)
		}
	}
	if !strings.Contains(md, `\begin{pmatrix}`) {
		t.Fatal("markdown missing composed matrix")
	}
	if !strings.Contains(md, "(6, 1)") {
		t.Fatal("markdown missing translated point (6, 1)")
	}
}

func TestMatrixLaTeX(t *testing.T) {
	got := MatrixLaTeX(geom.Translation(4, -2))
	want := `\begin{pmatrix} 1 & 0 & 4 \\ 0 & 1 & -2 \\ 0 & 0 & 1 \end{pmatrix}`
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestRenderHTMLStructure(t *testing.T) {
	exs, err := exercises.All()
	if err != nil {
		t.Fatal(err)
	}
	out, err := RenderHTML(Build(exs))
	if err != nil {
		t.Fatal(err)
	}

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("rendered HTML does not parse: %v", err)
	}

	var h2s, maths int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.DataAtom == atom.H2:
				h2s++
			case n.Data == "math":
				maths++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if h2s != len(exs) {
		t.Fatalf("got %d h2 headings, want %d", h2s, len(exs))
	}
	if maths == 0 {
		t.Fatal("no MathML output for the composed matrix")
	}
}

func TestRenderHTMLPlainMarkdown(t *testing.T) {
	out, err := RenderHTML("# Title\n\nA paragraph.\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<h1>") || !strings.Contains(out, "A paragraph.") {
		t.Fatalf("unexpected HTML: %q", out)
	}
}
