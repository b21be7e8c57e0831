package parser

import (
	"regexp"

	"moinmd.de/m/internal/ast"
)

var (
	reImageAlt  = regexp.MustCompile(`^[^}|]*`)
	reImageSize = regexp.MustCompile(`^[^}]*`)
)

// parseImage parses an embedded image, either an attachment of the wiki or
// an external URL.
func (p *moinP) parseImage() ast.InlineNode {
	if img := p.parseInternalImage(); img != nil {
		return img
	}
	if img := p.parseExternalImage(); img != nil {
		return img
	}
	return nil
}

func (p *moinP) parseInternalImage() *ast.ImageNode {
	pos := p.inp.Pos
	if !p.inp.Accept("{{attachment:") {
		return nil
	}
	path := p.match(reImagePath)
	if path == nil {
		p.inp.SetPos(pos)
		return nil
	}
	img := &ast.ImageNode{Attachment: true, Ref: string(path[0])}
	if !p.parseImageClauses(img) {
		p.inp.SetPos(pos)
		return nil
	}
	return img
}

func (p *moinP) parseExternalImage() *ast.ImageNode {
	pos := p.inp.Pos
	if !p.inp.Accept("{{") {
		return nil
	}
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
	img := &ast.ImageNode{Ref: string(proto[0]) + string(path[0])}
	if !p.parseImageClauses(img) {
		p.inp.SetPos(pos)
		return nil
	}
	return img
}

// parseImageClauses reads the optional "|alt|size" clauses and the closing
// braces. Empty alt and size clauses still count as given.
func (p *moinP) parseImageClauses(img *ast.ImageNode) bool {
	p.skipSpace()
	if p.inp.Ch == '|' {
		p.inp.Next()
		if m := p.match(reImageAlt); m != nil {
			img.Alt = string(m[0])
		}
		img.HasAlt = true
		if p.inp.Ch == '|' {
			p.inp.Next()
			if m := p.match(reImageSize); m != nil {
				img.Size = string(m[0])
			}
			img.HasSize = true
		}
	}
	return p.inp.Accept("}}")
}
