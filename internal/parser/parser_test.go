package parser_test

import (
	"errors"
	"testing"

	"moinmd.de/m/internal/ast"
	"moinmd.de/m/internal/parser"
)

func parseOne(t *testing.T, src string) ast.BlockNode {
	t.Helper()
	doc, err := parser.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	if len(doc.Blocks) == 0 {
		t.Fatalf("Parse(%q): no blocks", src)
	}
	return doc.Blocks[0]
}

func TestPrepare(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp string
	}{
		{"no indent\n", "no indent\n"},
		{"  two in\n", "@INDENT-2@two in\n"},
		{"   \n", "   \n"},
		{"  \ttab follows\n", "  \ttab follows\n"},
		{"a b\n", "a b\n"},
		{"  * item\n    * sub\n", "@INDENT-2@* item\n@INDENT-4@* sub\n"},
	}
	for _, tc := range testcases {
		if got := string(parser.Prepare([]byte(tc.src))); got != tc.exp {
			t.Errorf("Prepare(%q) == %q, expected %q", tc.src, got, tc.exp)
		}
	}
}

func TestParseHeading(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "== Galaxy News ==\n")
	hn, ok := bn.(*ast.HeadingNode)
	if !ok {
		t.Fatalf("expected heading, got %T", bn)
	}
	if hn.Level != 2 || hn.Title != "Galaxy News" {
		t.Errorf("heading == %d %q", hn.Level, hn.Title)
	}
}

func TestParseWikiWord(t *testing.T) {
	t.Parallel()
	accepted := []string{
		"WordsOfWisdom",
		"Wiki7Wa7",
		"WhatAbout/InPaths",
		"/WhatAbout/InPaths",
	}
	for _, word := range accepted {
		bn := parseOne(t, word)
		pn, ok := bn.(*ast.ParaNode)
		if !ok {
			t.Fatalf("%q: expected paragraph, got %T", word, bn)
		}
		wn, ok := pn.Inlines[0].(*ast.WikiWordNode)
		if !ok {
			t.Errorf("%q: expected wiki word, got %T", word, pn.Inlines[0])
			continue
		}
		if wn.Word != word {
			t.Errorf("%q: word == %q", word, wn.Word)
		}
	}
	rejected := []string{
		"Wordsofwisdom",
		"W_Words",
		"WikiW",
		"Wik7W",
	}
	for _, word := range rejected {
		bn := parseOne(t, word)
		pn, ok := bn.(*ast.ParaNode)
		if !ok {
			t.Fatalf("%q: expected paragraph, got %T", word, bn)
		}
		if _, ok := pn.Inlines[0].(*ast.WikiWordNode); ok {
			t.Errorf("%q: must not parse as wiki word", word)
		}
	}
}

func TestParseSuppressedWikiWord(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "!WordsOfWisdom")
	pn := bn.(*ast.ParaNode)
	wn, ok := pn.Inlines[0].(*ast.WikiWordNode)
	if !ok || !wn.Suppressed {
		t.Fatalf("expected suppressed wiki word, got %#v", pn.Inlines[0])
	}
}

func TestParseInstructions(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name string
		src  string
		err  error
	}{
		{"redirect", "#REDIRECT OtherPage\n", parser.ErrRedirect},
		{"refresh", "#refresh 5 OtherPage\n", parser.ErrRefresh},
		{"creole", "#format text/creole\ntext\n", parser.ErrCreole},
	}
	for _, tc := range testcases {
		if _, err := parser.Parse([]byte(tc.src)); !errors.Is(err, tc.err) {
			t.Errorf("%s: error == %v, expected %v", tc.name, err, tc.err)
		}
	}
	doc, err := parser.Parse([]byte("#language en\n#format wiki\n#pragma section-numbers off\ntext\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Blocks) == 0 {
		t.Error("instructions swallowed the content")
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, " * one\n * two\n   * sub\n")
	ln, ok := bn.(*ast.ListNode)
	if !ok {
		t.Fatalf("expected list, got %T", bn)
	}
	if len(ln.Items) != 3 {
		t.Fatalf("len(items) == %d", len(ln.Items))
	}
	if ln.Items[0].Depth != 1 || ln.Items[2].Depth != 3 {
		t.Errorf("depths == %d %d", ln.Items[0].Depth, ln.Items[2].Depth)
	}
	if ln.Items[1].Marker != "*" {
		t.Errorf("marker == %q", ln.Items[1].Marker)
	}
}

func TestParseNumberedList(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, " 1. first\n 2. second\n")
	ln, ok := bn.(*ast.ListNode)
	if !ok {
		t.Fatalf("expected list, got %T", bn)
	}
	if ln.Items[0].Marker != "1." || ln.Items[1].Marker != "2." {
		t.Errorf("markers == %q %q", ln.Items[0].Marker, ln.Items[1].Marker)
	}
}

func TestParseTable(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "||<class='th'> Head ||<class='th'> Col ||\n|| a || b ||\n")
	tn, ok := bn.(*ast.TableNode)
	if !ok {
		t.Fatalf("expected table, got %T", bn)
	}
	if len(tn.Rows) != 2 {
		t.Fatalf("len(rows) == %d", len(tn.Rows))
	}
	if got := tn.Rows[0].Cells[0].Class; got != "th" {
		t.Errorf("first cell class == %q", got)
	}
	if len(tn.Rows[1].Cells) != 2 {
		t.Errorf("len(cells) == %d", len(tn.Rows[1].Cells))
	}
}

func TestParseTableFormats(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "||<-2 rowclass='th'> Wide ||\n||<:> centered ||<)50%> right ||\n")
	tn := bn.(*ast.TableNode)
	if got := tn.Rows[0].Class; got != "'th'" {
		t.Errorf("row class == %q", got)
	}
	first := tn.Rows[0].Cells[0]
	if len(first.Format) != 1 || first.Format[0].Kind != ast.CellColSpan || first.Format[0].Value != "2" {
		t.Errorf("first cell format == %#v", first.Format)
	}
	second := tn.Rows[1].Cells[1]
	if len(second.Format) != 2 || second.Format[0].Kind != ast.CellRight || second.Format[1].Kind != ast.CellWidth {
		t.Errorf("second row cell format == %#v", second.Format)
	}
}

func TestParseMacros(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp any
	}{
		{"<<BR>>", &ast.BreakNode{}},
		{"<<TableOfContents>>", &ast.TocNode{}},
		{"<<TableOfContents(2)>>", &ast.TocNode{MaxDepth: 2}},
		{"<<div(center)>>", &ast.DivNode{Class: "center"}},
		{"<<div>>", &ast.DivEndNode{}},
		{"<<span(red)>>", &ast.SpanNode{Class: "red"}},
		{"<<span>>", &ast.SpanEndNode{}},
		{"<<Anchor(faq)>>", &ast.AnchorNode{Name: "faq"}},
		{"<<AttachList>>", &ast.AttachListNode{}},
	}
	for _, tc := range testcases {
		bn := parseOne(t, tc.src)
		pn, ok := bn.(*ast.ParaNode)
		var got ast.Node
		if ok {
			got = pn.Inlines[0]
		} else {
			got = bn
		}
		switch exp := tc.exp.(type) {
		case *ast.BreakNode:
			if _, ok := got.(*ast.BreakNode); !ok {
				t.Errorf("%q: got %T", tc.src, got)
			}
		case *ast.TocNode:
			tn, ok := got.(*ast.TocNode)
			if !ok || tn.MaxDepth != exp.MaxDepth {
				t.Errorf("%q: got %#v", tc.src, got)
			}
		case *ast.DivNode:
			dn, ok := got.(*ast.DivNode)
			if !ok || dn.Class != exp.Class {
				t.Errorf("%q: got %#v", tc.src, got)
			}
		case *ast.DivEndNode:
			if _, ok := got.(*ast.DivEndNode); !ok {
				t.Errorf("%q: got %T", tc.src, got)
			}
		case *ast.SpanNode:
			sn, ok := got.(*ast.SpanNode)
			if !ok || sn.Class != exp.Class {
				t.Errorf("%q: got %#v", tc.src, got)
			}
		case *ast.SpanEndNode:
			if _, ok := got.(*ast.SpanEndNode); !ok {
				t.Errorf("%q: got %T", tc.src, got)
			}
		case *ast.AnchorNode:
			an, ok := got.(*ast.AnchorNode)
			if !ok || an.Name != exp.Name {
				t.Errorf("%q: got %#v", tc.src, got)
			}
		case *ast.AttachListNode:
			if _, ok := got.(*ast.AttachListNode); !ok {
				t.Errorf("%q: got %T", tc.src, got)
			}
		}
	}
}

func TestParseInclude(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, `<<Include(FAQ, to="EndFaq")>>`)
	in, ok := bn.(*ast.IncludeNode)
	if !ok {
		t.Fatalf("expected include, got %T", bn)
	}
	if in.Page != "FAQ" {
		t.Errorf("page == %q", in.Page)
	}
	if len(in.Params) != 1 || in.Params[0].Name != "to" || in.Params[0].RawValue != `"EndFaq"` {
		t.Errorf("params == %#v", in.Params)
	}
}

func TestParseMailTo(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "<<MailTo(galaxy AT example DOT org, the list)>>")
	mn, ok := bn.(*ast.MailToNode)
	if !ok {
		t.Fatalf("expected mailto, got %T", bn)
	}
	if mn.Address != "galaxy AT example DOT org" || mn.Text != "the list" {
		t.Errorf("mailto == %q %q", mn.Address, mn.Text)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "<<DateTime(2012-01-27T15:04:05Z)>>")
	dn, ok := bn.(*ast.DateNode)
	if !ok {
		t.Fatalf("expected date, got %T", bn)
	}
	if dn.Timestamp != "2012-01-27T15:04:05Z" {
		t.Errorf("timestamp == %q", dn.Timestamp)
	}
}

func TestParseLinks(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "[[/GetGalaxy#This is a 23 Link-to|Install own Galaxy]]")
	pn := bn.(*ast.ParaNode)
	ln, ok := pn.Inlines[0].(*ast.InternalLinkNode)
	if !ok {
		t.Fatalf("expected internal link, got %T", pn.Inlines[0])
	}
	if ln.Page != "/GetGalaxy" || ln.Anchor != "This is a 23 Link-to" || ln.Text != "Install own Galaxy" {
		t.Errorf("link == %#v", ln)
	}
}

func TestParseExternalLink(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "[[http://example.org/page|some text]]")
	pn := bn.(*ast.ParaNode)
	ln, ok := pn.Inlines[0].(*ast.ExternalLinkNode)
	if !ok {
		t.Fatalf("expected external link, got %T", pn.Inlines[0])
	}
	if ln.URL != "http://example.org/page" || ln.Text != "some text" {
		t.Errorf("link == %#v", ln)
	}
}

func TestParseDirectLink(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "http://example.org/page\n")
	pn := bn.(*ast.ParaNode)
	ln, ok := pn.Inlines[0].(*ast.DirectLinkNode)
	if !ok {
		t.Fatalf("expected direct link, got %T", pn.Inlines[0])
	}
	if ln.URL != "http://example.org/page" {
		t.Errorf("url == %q", ln.URL)
	}
}

func TestParseInterwikiLink(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "[[Wikipedia:Galaxy|the galaxy]]")
	pn := bn.(*ast.ParaNode)
	ln, ok := pn.Inlines[0].(*ast.InterwikiLinkNode)
	if !ok {
		t.Fatalf("expected interwiki link, got %T", pn.Inlines[0])
	}
	if ln.Prefix != "Wikipedia" || ln.Page != "Galaxy" || ln.Text != "the galaxy" {
		t.Errorf("link == %#v", ln)
	}
}

func TestParseAttachmentLink(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "[[attachment:Images/Tours/galaxy.png|screen shot]]")
	pn := bn.(*ast.ParaNode)
	ln, ok := pn.Inlines[0].(*ast.AttachmentLinkNode)
	if !ok {
		t.Fatalf("expected attachment link, got %T", pn.Inlines[0])
	}
	if !ln.IsImage || ln.Path != "Images/Tours/galaxy.png" || ln.Text != "screen shot" {
		t.Errorf("link == %#v", ln)
	}
}

func TestParseImages(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "{{attachment:Images/Utah.png|Utah|width=120}}")
	pn := bn.(*ast.ParaNode)
	img, ok := pn.Inlines[0].(*ast.ImageNode)
	if !ok {
		t.Fatalf("expected image, got %T", pn.Inlines[0])
	}
	if !img.Attachment || img.Ref != "Images/Utah.png" || img.Alt != "Utah" || img.Size != "width=120" {
		t.Errorf("image == %#v", img)
	}
	if !img.HasAlt || !img.HasSize {
		t.Error("alt and size clauses must be marked as given")
	}

	bn = parseOne(t, "{{http://example.org/shot.png}}")
	pn = bn.(*ast.ParaNode)
	img, ok = pn.Inlines[0].(*ast.ImageNode)
	if !ok {
		t.Fatalf("expected image, got %T", pn.Inlines[0])
	}
	if img.Attachment || img.Ref != "http://example.org/shot.png" || img.HasAlt {
		t.Errorf("image == %#v", img)
	}
}

func TestParseFormats(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "'''bold''' and ''italic'' and ^sup^ and --(gone)--")
	pn := bn.(*ast.ParaNode)
	var bold, italic, sup, strike int
	for _, in := range pn.Inlines {
		switch n := in.(type) {
		case *ast.FormatNode:
			switch n.Kind {
			case ast.FormatBold:
				bold++
			case ast.FormatItalic:
				italic++
			}
		case *ast.SuperscriptNode:
			sup++
		case *ast.StrikeNode:
			strike++
		}
	}
	if bold != 2 || italic != 2 || sup != 1 || strike != 1 {
		t.Errorf("counts == %d %d %d %d", bold, italic, sup, strike)
	}
}

func TestParseUnderline(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "__underlined text__")
	pn := bn.(*ast.ParaNode)
	fn, ok := pn.Inlines[0].(*ast.FormatNode)
	if !ok || fn.Kind != ast.FormatUnderline {
		t.Fatalf("expected underline toggle, got %#v", pn.Inlines[0])
	}
	last := pn.Inlines[len(pn.Inlines)-1]
	if fn, ok := last.(*ast.FormatNode); !ok || fn.Kind != ast.FormatUnderline {
		t.Errorf("expected closing underline toggle, got %#v", last)
	}
}

func TestParseMonospace(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "run `galaxy.sh` or {{{run.sh}}} now")
	pn := bn.(*ast.ParaNode)
	var lits []string
	for _, in := range pn.Inlines {
		if n, ok := in.(*ast.LiteralNode); ok {
			lits = append(lits, n.Text)
		}
	}
	if len(lits) != 2 || lits[0] != "galaxy.sh" || lits[1] != "run.sh" {
		t.Errorf("literals == %#v", lits)
	}
}

func TestParseVerbatim(t *testing.T) {
	t.Parallel()
	doc, err := parser.Parse([]byte("{{{#!highlight python\nprint(42)\n}}}\n"))
	if err != nil {
		t.Fatal(err)
	}
	vs, ok := doc.Blocks[0].(*ast.VerbatimStartNode)
	if !ok {
		t.Fatalf("expected verbatim start, got %T", doc.Blocks[0])
	}
	if vs.Lang != "python" {
		t.Errorf("lang == %q", vs.Lang)
	}
	var end bool
	for _, bn := range doc.Blocks {
		if _, ok := bn.(*ast.VerbatimEndNode); ok {
			end = true
		}
	}
	if !end {
		t.Error("no verbatim end")
	}
}

func TestParseComments(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "## page comment\ntext\n")
	if _, ok := bn.(*ast.CommentNode); !ok {
		t.Fatalf("expected comment, got %T", bn)
	}
	bn = parseOne(t, "before /* hidden */ after\n")
	pn := bn.(*ast.ParaNode)
	var found bool
	for _, in := range pn.Inlines {
		if cn, ok := in.(*ast.CommentInlineNode); ok {
			found = true
			if cn.Text != " hidden " {
				t.Errorf("comment text == %q", cn.Text)
			}
		}
	}
	if !found {
		t.Error("no inline comment")
	}
}

func TestParseMergedText(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "Hello, world!\n")
	pn := bn.(*ast.ParaNode)
	if len(pn.Inlines) != 1 {
		t.Fatalf("len(inlines) == %d, expected one text node", len(pn.Inlines))
	}
	tn, ok := pn.Inlines[0].(*ast.TextNode)
	if !ok || tn.Text != "Hello, world!" {
		t.Errorf("text == %#v", pn.Inlines[0])
	}
}

func TestParseTitleDiv(t *testing.T) {
	t.Parallel()
	bn := parseOne(t, "<<div(title)>>Galaxy News<<div>>\n")
	tn, ok := bn.(*ast.TitleNode)
	if !ok {
		t.Fatalf("expected title, got %T", bn)
	}
	if len(tn.Inlines) == 0 {
		t.Error("empty title")
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	_, err := parser.Parse([]byte("ok so far\n||broken"))
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if perr.Pos != 10 {
		t.Errorf("error position == %d, expected 10", perr.Pos)
	}
}
