package parser

import (
	"regexp"

	"t73f.de/r/zsx/input"

	"moinmd.de/m/internal/ast"
)

var (
	reLinkProtocol = regexp.MustCompile(`(?i)^(?:http|https|ftp|rtsp)://`)
	rePagePart     = regexp.MustCompile(`^[\w\-\.~:/?@!$&'*+;= %]+`)
	reImagePath    = regexp.MustCompile(`^[\w\-\.~:/?@!$&'*+;= %]+?\.(?:jpg|jpeg|JPG|JPEG|gif|GIF|png|PNG)`)
	reExtPagePath  = regexp.MustCompile(`^[\w\-\.~:/?#@!$&'()*+, ;= %"]+`)
	reInterwikiKey = regexp.MustCompile(`^\w+`)
)

// parseLink parses the bracketed link forms and bare URLs. The order of the
// alternatives matters: "[[attachment:" must win over a generic internal
// link, and an image display clause over a plain external link.
func (p *moinP) parseLink() ast.InlineNode {
	if in := p.parseAttachmentLink(); in != nil {
		return in
	}
	if in := p.parseImageLink(); in != nil {
		return in
	}
	if in := p.parseExternalLink(); in != nil {
		return in
	}
	if in := p.parseDirectLink(); in != nil {
		return in
	}
	if in := p.parseInterwikiLink(); in != nil {
		return in
	}
	return p.parseInternalLink()
}

// scanToLinkClause reads link text up to the next clause separator "|" or
// the closing "]]". It fails on an empty clause or a line break.
func (p *moinP) scanToLinkClause() (string, bool) {
	pos := p.inp.Pos
	for {
		switch p.inp.Ch {
		case '\n', input.EOS:
			p.inp.SetPos(pos)
			return "", false
		case '|':
			if p.inp.Pos == pos {
				return "", false
			}
			return string(p.inp.Src[pos:p.inp.Pos]), true
		case ']':
			cur := p.inp.Pos
			p.inp.Next()
			if p.inp.Ch == ']' {
				p.inp.SetPos(cur)
				if cur == pos {
					return "", false
				}
				return string(p.inp.Src[pos:cur]), true
			}
		default:
			p.inp.Next()
		}
	}
}

// scanAnchor reads an anchor name after "#", up to the end of the link or
// the line.
func (p *moinP) scanAnchor() (string, bool) {
	pos := p.inp.Pos
	for {
		switch p.inp.Ch {
		case '\n', input.EOS, '|':
			if p.inp.Pos == pos {
				return "", false
			}
			return string(p.inp.Src[pos:p.inp.Pos]), true
		case ']':
			cur := p.inp.Pos
			p.inp.Next()
			if p.inp.Ch == ']' {
				p.inp.SetPos(cur)
				if cur == pos {
					return "", false
				}
				return string(p.inp.Src[pos:cur]), true
			}
		default:
			p.inp.Next()
		}
	}
}

// parsePagePathRef reads the page part and optional "#anchor" of an
// internal reference. Both parts may be empty.
func (p *moinP) parsePagePathRef() (page, anchor string) {
	if m := p.match(rePagePart); m != nil {
		page = string(m[0])
	}
	if p.inp.Ch == '#' {
		pos := p.inp.Pos
		p.inp.Next()
		if a, ok := p.scanAnchor(); ok {
			anchor = a
		} else {
			p.inp.SetPos(pos)
		}
	}
	return page, anchor
}

func (p *moinP) parseAttachmentLink() ast.InlineNode {
	pos := p.inp.Pos
	if !p.inp.Accept("[[attachment:") {
		return nil
	}
	ln := &ast.AttachmentLinkNode{}
	if m := p.match(reImagePath); m != nil {
		ln.Path = string(m[0])
		ln.IsImage = true
	} else {
		page, anchor := p.parsePagePathRef()
		ln.Path, ln.Anchor = page, anchor
	}
	if p.inp.Ch == '|' {
		p.inp.Next()
		if img := p.parseInternalImage(); img != nil {
			ln.Image = img
		} else if text, ok := p.scanToLinkClause(); ok {
			ln.Text = text
		} else {
			p.inp.SetPos(pos)
			return nil
		}
		if p.inp.Ch == '|' {
			p.inp.Next()
			if _, ok := p.scanToLinkClause(); !ok {
				p.inp.SetPos(pos)
				return nil
			}
		}
	}
	if !p.inp.Accept("]]") {
		p.inp.SetPos(pos)
		return nil
	}
	return ln
}

func (p *moinP) parseImageLink() ast.InlineNode {
	pos := p.inp.Pos
	if !p.inp.Accept("[[") {
		return nil
	}
	ln := &ast.ImageLinkNode{}
	if proto := p.match(reLinkProtocol); proto != nil {
		path := p.match(reExtPagePath)
		if path == nil {
			p.inp.SetPos(pos)
			return nil
		}
		ln.URL = string(proto[0]) + string(path[0])
	} else {
		ln.Internal = true
		ln.Page, ln.Anchor = p.parsePagePathRef()
	}
	if p.inp.Ch != '|' {
		p.inp.SetPos(pos)
		return nil
	}
	p.inp.Next()
	img := p.parseImage()
	if img == nil {
		p.inp.SetPos(pos)
		return nil
	}
	ln.Image = img.(*ast.ImageNode)
	if p.inp.Ch == '|' {
		p.inp.Next()
		if _, ok := p.scanToLinkClause(); !ok {
			p.inp.SetPos(pos)
			return nil
		}
	}
	if !p.inp.Accept("]]") {
		p.inp.SetPos(pos)
		return nil
	}
	return ln
}

func (p *moinP) parseExternalLink() ast.InlineNode {
	pos := p.inp.Pos
	if !p.inp.Accept("[[") {
		return nil
	}
	p.skipSpace()
	proto := p.match(reLinkProtocol)
	if proto == nil {
		p.inp.SetPos(pos)
		return nil
	}
	path := p.match(reExtPagePath)
	if path == nil {
		p.inp.SetPos(pos)
		return nil
	}
	ln := &ast.ExternalLinkNode{URL: string(proto[0]) + string(path[0])}
	p.skipSpace()
	if p.inp.Ch == '|' {
		p.inp.Next()
		p.skipSpace()
		if img := p.parseImage(); img != nil {
			ln.Image = img.(*ast.ImageNode)
		} else if text, ok := p.scanToLinkClause(); ok {
			ln.Text = text
		}
		if p.inp.Ch == '|' {
			p.inp.Next()
			p.skipSpace()
			p.scanToLinkClause()
		}
	}
	if !p.inp.Accept("]]") {
		p.inp.SetPos(pos)
		return nil
	}
	return ln
}

func (p *moinP) parseDirectLink() ast.InlineNode {
	pos := p.inp.Pos
	proto := p.match(reLinkProtocol)
	if proto == nil {
		return nil
	}
	path := p.match(reExtPagePath)
	if path == nil {
		p.inp.SetPos(pos)
		return nil
	}
	return &ast.DirectLinkNode{URL: string(proto[0]) + string(path[0])}
}

func (p *moinP) parseInterwikiLink() ast.InlineNode {
	pos := p.inp.Pos
	if !p.inp.Accept("[[") {
		return nil
	}
	p.skipSpace()
	key := p.match(reInterwikiKey)
	if key == nil {
		p.inp.SetPos(pos)
		return nil
	}
	p.skipSpace()
	if p.inp.Ch != ':' {
		p.inp.SetPos(pos)
		return nil
	}
	p.inp.Next()
	p.skipSpace()
	ln := &ast.InterwikiLinkNode{Prefix: string(key[0])}
	if page, ok := p.scanToLinkClause(); ok {
		ln.Page = page
	}
	if p.inp.Ch == '|' {
		p.inp.Next()
		if text, ok := p.scanToLinkClause(); ok {
			ln.Text = text
		}
	}
	if !p.inp.Accept("]]") {
		p.inp.SetPos(pos)
		return nil
	}
	return ln
}

func (p *moinP) parseInternalLink() ast.InlineNode {
	pos := p.inp.Pos
	if !p.inp.Accept("[[") {
		return nil
	}
	p.skipSpace()
	ln := &ast.InternalLinkNode{}
	ln.Page, ln.Anchor = p.parsePagePathRef()
	if p.inp.Ch == '|' {
		p.inp.Next()
		text, ok := p.scanToLinkClause()
		if !ok {
			p.inp.SetPos(pos)
			return nil
		}
		ln.Text = text
		if p.inp.Ch == '|' {
			p.inp.Next()
			if _, ok := p.scanToLinkClause(); !ok {
				p.inp.SetPos(pos)
				return nil
			}
		}
	}
	if !p.inp.Accept("]]") {
		p.inp.SetPos(pos)
		return nil
	}
	return ln
}
