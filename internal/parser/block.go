package parser

import (
	"regexp"
	"strings"

	"t73f.de/r/zsx/input"

	"moinmd.de/m/internal/ast"
)

var (
	reHeading   = regexp.MustCompile(`^(=+) +(.+) +=+\n`)
	reTitleOpen = regexp.MustCompile(`^<<div\(\s*title\s*\)>>`)
	reTitleEnd  = regexp.MustCompile(`^\s*<<div>>`)
	reComment   = regexp.MustCompile(`^##([^\n]*)\n`)
	reBlank     = regexp.MustCompile(`^[ \t\f\v]*\n`)
)

// parseBlock parses the next top-level element. The rule order matters: a
// "||" line must become a table before the cell bars can be mistaken for
// punctuation, and a "##" line a comment before it becomes a paragraph.
func (p *moinP) parseBlock() ast.BlockNode {
	if bn := p.parseHeading(); bn != nil {
		return bn
	}
	if bn := p.parseTitle(); bn != nil {
		return bn
	}
	if bn := p.parseList(); bn != nil {
		return bn
	}
	if bn := p.parseTable(); bn != nil {
		return bn
	}
	if in := p.parseMacro(); in != nil {
		return in.(ast.BlockNode)
	}
	if bn := p.parseVerbatimStart(); bn != nil {
		return bn
	}
	if p.inp.Accept("}}}") {
		return &ast.VerbatimEndNode{}
	}
	if in := p.parseFontSize(); in != nil {
		return in.(ast.BlockNode)
	}
	if bn := p.parseComment(); bn != nil {
		return bn
	}
	if bn := p.parseParagraph(); bn != nil {
		return bn
	}
	if p.match(reBlank) != nil {
		return &ast.BlankNode{}
	}
	return nil
}

func (p *moinP) parseHeading() ast.BlockNode {
	m := p.match(reHeading)
	if m == nil {
		return nil
	}
	for p.inp.Ch == '\n' {
		p.inp.Next()
	}
	return &ast.HeadingNode{Level: len(m[1]), Title: string(m[2])}
}

func (p *moinP) parseTitle() ast.BlockNode {
	pos := p.inp.Pos
	if p.match(reTitleOpen) == nil {
		return nil
	}
	tn := &ast.TitleNode{}
	for {
		in := p.parseInline(false)
		if in == nil {
			break
		}
		tn.Inlines = append(tn.Inlines, in)
	}
	if len(tn.Inlines) == 0 || p.match(reTitleEnd) == nil {
		p.inp.SetPos(pos)
		return nil
	}
	return tn
}

func (p *moinP) parseComment() ast.BlockNode {
	m := p.match(reComment)
	if m == nil {
		return nil
	}
	return &ast.CommentNode{Text: strings.TrimSpace(string(m[1]))}
}

func (p *moinP) parseParagraph() ast.BlockNode {
	pn := &ast.ParaNode{}
	for {
		in := p.parseInline(true)
		if in == nil {
			break
		}
		pn.Inlines = append(pn.Inlines, in)
	}
	if len(pn.Inlines) == 0 {
		return nil
	}
	return pn
}

var reVerbatimStart = regexp.MustCompile(`^\{\{\{(?:\s*#!(?:highlight(?:er)* +)?([^\s/]+))?`)

func (p *moinP) parseVerbatimStart() ast.BlockNode {
	m := p.match(reVerbatimStart)
	if m == nil {
		return nil
	}
	return &ast.VerbatimStartNode{Lang: string(m[1])}
}

// parseListItemEnd consumes the end of a list item line: optional spaces
// and a line ending. The end of input counts as a line ending.
func (p *moinP) parseLineEnd() bool {
	for p.inp.Ch == ' ' {
		p.inp.Next()
	}
	switch p.inp.Ch {
	case '\n':
		p.inp.Next()
		return true
	case input.EOS:
		return true
	}
	return false
}
