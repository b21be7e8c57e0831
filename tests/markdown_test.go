package tests

// End-to-end checks: translate MoinMoin sources and feed the resulting
// Markdown to a GFM renderer, to make sure the output is valid GFM and keeps
// the meaning of the page.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"moinmd.de/m/internal/encoder"
	"moinmd.de/m/internal/translate"
)

var gfm = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderGFM(t *testing.T, src string) string {
	t.Helper()
	tr := translate.New("/src/SomePage", 0, encoder.EncodingMarkdown)
	md, err := tr.Translate([]byte(src))
	if err != nil {
		t.Fatalf("Translate(%q): %v", src, err)
	}
	var buf bytes.Buffer
	if err = gfm.Convert(md, &buf); err != nil {
		t.Fatalf("Convert(%q): %v", md, err)
	}
	return buf.String()
}

func TestMarkdownRendering(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name string
		src  string
		want []string
	}{
		{"heading and paragraph",
			"= Galaxy News =\nfresh text\n",
			[]string{"<h1>Galaxy News</h1>", "<p>fresh text</p>"}},
		{"nested list",
			" * one\n * two\n   * sub\n",
			[]string{"<ul>", "<li>one</li>", "sub"}},
		{"numbered list",
			" 1. first\n 2. second\n",
			[]string{"<ol>", "<li>first</li>"}},
		{"table",
			"||<rowclass='th'> Head || Col ||\n|| a || b ||\n",
			[]string{"<table>", "<th>Head</th>", "<td>a</td>"}},
		{"code block",
			"{{{#!highlight python\nprint(42)\n}}}\n",
			[]string{"language-python", "print(42)"}},
		{"external link",
			"[[http://example.org/page|example]]\n",
			[]string{`<a href="http://example.org/page">example</a>`}},
		{"strike through",
			"--(gone)--\n",
			[]string{"<del>gone</del>"}},
		{"wiki word",
			"see GetGalaxy\n",
			[]string{`<a href="/src/GetGalaxy/index.md">GetGalaxy</a>`}},
		{"monospace",
			"run `galaxy.sh` now\n",
			[]string{"<code>galaxy.sh</code>"}},
	}
	for _, tc := range testcases {
		html := renderGFM(t, tc.src)
		for _, want := range tc.want {
			if !strings.Contains(html, want) {
				t.Errorf("%s: missing %q in %q", tc.name, want, html)
			}
		}
	}
}

func TestMarkdownFrontMatter(t *testing.T) {
	t.Parallel()
	tr := translate.New("/src/SomePage", 0, encoder.EncodingMarkdown)
	md, err := tr.Translate([]byte("<<div(title)>>Galaxy News<<div>>\n<<TableOfContents>>\nbody\n"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(md)
	if !strings.HasPrefix(out, "---\n") {
		t.Fatalf("missing front matter in %q", out)
	}
	for _, want := range []string{"title: Galaxy News\n", "autotoc: true\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
