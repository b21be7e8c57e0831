package parser

import (
	"regexp"
	"strconv"

	"moinmd.de/m/internal/ast"
)

var (
	reToc      = regexp.MustCompile(`^TableOfContents(?:\((\d*)\))?`)
	reDiv      = regexp.MustCompile(`^div\(([\w\- ]+)\)`)
	reSpan     = regexp.MustCompile(`^span\(([\w ]+)\)`)
	reMailTo   = regexp.MustCompile(`^MailTo\( *([^,)]+)(?:, *([^)]+))?\)`)
	reAnchor   = regexp.MustCompile(`^Anchor\((.+)\)`)
	reDate     = regexp.MustCompile(`^Date(?:Time)?\((.+)\)`)
	reOther    = regexp.MustCompile(`^(NewPage|FullSearchCached|RSSReader|Action|ShowTweets|DictColumns)\((.*)\)`)
	reParamKey = regexp.MustCompile(`^\w+`)
)

// parseMacro parses a "<<...>>" macro call. Unknown macros do not match at
// all, so the "<<" falls through to plain punctuation handling.
func (p *moinP) parseMacro() ast.InlineNode {
	pos := p.inp.Pos
	if !p.inp.Accept("<<") {
		return nil
	}
	in := p.parseMacroBody()
	if in == nil || !p.inp.Accept(">>") {
		p.inp.SetPos(pos)
		return nil
	}
	return in
}

func (p *moinP) parseMacroBody() ast.InlineNode {
	if m := p.match(reToc); m != nil {
		depth := 0
		if len(m[1]) > 0 {
			depth, _ = strconv.Atoi(string(m[1]))
		}
		return &ast.TocNode{MaxDepth: depth}
	}
	if in := p.parseInclude(); in != nil {
		return in
	}
	if m := p.match(reDiv); m != nil {
		return &ast.DivNode{Class: string(m[1])}
	}
	if p.inp.Accept("div") {
		return &ast.DivEndNode{}
	}
	if m := p.match(reSpan); m != nil {
		return &ast.SpanNode{Class: string(m[1])}
	}
	if p.inp.Accept("span") {
		return &ast.SpanEndNode{}
	}
	if p.inp.Accept("BR") {
		return &ast.BreakNode{}
	}
	if m := p.match(reMailTo); m != nil {
		mn := &ast.MailToNode{Address: string(m[1]), Text: string(m[2])}
		if mn.Text == "" {
			mn.Text = mn.Address
		}
		return mn
	}
	if m := p.match(reAnchor); m != nil {
		return &ast.AnchorNode{Name: string(m[1])}
	}
	if m := p.match(reDate); m != nil {
		return &ast.DateNode{Timestamp: string(m[1])}
	}
	if m := p.match(reOther); m != nil {
		return &ast.OtherMacroNode{Name: string(m[1]), Args: string(m[2])}
	}
	if p.inp.Accept("AttachList") {
		return &ast.AttachListNode{}
	}
	return nil
}

// parseInclude parses "Include(Page, param=value, ...)". Parameters without
// the key=value shape are skipped, only their quoted values survive.
func (p *moinP) parseInclude() ast.InlineNode {
	pos := p.inp.Pos
	if !p.inp.Accept("Include(") {
		return nil
	}
	p.skipSpace()
	in := &ast.IncludeNode{}
	in.Page, in.Anchor = p.parsePagePathRef()
	p.skipSpace()
	for {
		if p.inp.Accept(",") {
			p.skipSpace()
			argPos := p.inp.Pos
			if key := p.match(reParamKey); key != nil {
				p.skipSpace()
				if p.inp.Accept("=") {
					p.skipSpace()
					if val, ok := p.scanQuoted(); ok {
						in.Params = append(in.Params, ast.IncludeParam{
							Name:     string(key[0]),
							RawValue: val,
						})
						continue
					}
				}
			}
			p.inp.SetPos(argPos)
			continue
		}
		if p.inp.Ch == ' ' || p.inp.Ch == '\t' {
			p.skipSpace()
			continue
		}
		break
	}
	if !p.inp.Accept(")") {
		p.inp.SetPos(pos)
		return nil
	}
	return in
}
