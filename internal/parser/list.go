package parser

import (
	"regexp"
	"strconv"

	"moinmd.de/m/internal/ast"
)

var (
	reListAhead  = regexp.MustCompile(`^@INDENT-\d+@(?:\*|\d+\.)`)
	reListMarker = regexp.MustCompile(`^(?:\d+\.|\*)`)
	reSpaces     = regexp.MustCompile(`^ +`)
	reBlankRun   = regexp.MustCompile(`^ *\n`)
)

// parseList parses a bullet or numbered list. A list starts at an indented
// line whose first character is a list marker; an indented line without a
// marker continues the current item on its own line.
func (p *moinP) parseList() ast.BlockNode {
	if !p.matches(reListAhead) {
		return nil
	}
	ln := &ast.ListNode{}
	for {
		item := p.parseListItem()
		if item == nil {
			break
		}
		ln.Items = append(ln.Items, item)
	}
	if len(ln.Items) == 0 {
		return nil
	}
	for p.match(reBlankRun) != nil {
	}
	return ln
}

func (p *moinP) parseListItem() *ast.ListItemNode {
	pos := p.inp.Pos
	m := p.match(reIndent)
	if m == nil {
		return nil
	}
	depth, _ := strconv.Atoi(string(m[1]))
	item := &ast.ListItemNode{Depth: depth}
	if mm := p.match(reListMarker); mm != nil {
		item.Marker = string(mm[0])
	}
	p.match(reSpaces)
	for {
		in := p.parseInline(true)
		if in == nil {
			break
		}
		item.Inlines = append(item.Inlines, in)
	}
	if len(item.Inlines) == 0 || !p.parseLineEnd() {
		p.inp.SetPos(pos)
		return nil
	}
	return item
}
