package parser

import (
	"regexp"
	"strconv"

	"t73f.de/r/zsx/input"

	"moinmd.de/m/internal/ast"
)

var (
	reIndent      = regexp.MustCompile(`^@INDENT-(\d+)@`)
	reSuperscript = regexp.MustCompile(`^\^(.+?)\^`)
	reStrike      = regexp.MustCompile(`^--\((.+?)\)--`)
	reMonospace   = regexp.MustCompile("^(?:\\{\\{\\{|`)(.*?)(?:\\}\\}\\}|`)")
	reFontStart   = regexp.MustCompile(`^~([+-])`)
	reFontEnd     = regexp.MustCompile(`^([+-])~`)
	// Underscores are not plain text: a run of text would otherwise hide
	// the "__" underline toggle. A single "_" still comes through as
	// punctuation.
	rePlainText = regexp.MustCompile(`^[\p{L}\p{N} \t\f\v]+`)
	reWikiWord    = regexp.MustCompile(`^(/?[A-Z][a-z0-9]+(?:[A-Z][a-z0-9]+)+)+`)
)

// parseInline parses the next inline element. Links and images must come
// before the wiki words, else the page name inside "[[...]]" would match
// first. withMacro is false inside the title div, where a nested macro
// would recurse.
func (p *moinP) parseInline(withMacro bool) ast.InlineNode {
	if m := p.match(reIndent); m != nil {
		depth, _ := strconv.Atoi(string(m[1]))
		return &ast.IndentNode{Depth: depth}
	}
	if withMacro {
		if in := p.parseMacro(); in != nil {
			return in
		}
	}
	if in := p.parseLink(); in != nil {
		return in
	}
	if in := p.parseImage(); in != nil {
		return in
	}
	if in := p.parseWikiWord(); in != nil {
		return in
	}
	if m := p.match(reSuperscript); m != nil {
		return &ast.SuperscriptNode{Text: string(m[1])}
	}
	if m := p.match(reStrike); m != nil {
		return &ast.StrikeNode{Text: string(m[1])}
	}
	if p.inp.Accept("__") {
		return &ast.FormatNode{Kind: ast.FormatUnderline}
	}
	if p.inp.Accept("'''") {
		return &ast.FormatNode{Kind: ast.FormatBold}
	}
	if p.inp.Accept("''") {
		return &ast.FormatNode{Kind: ast.FormatItalic}
	}
	if in := p.parseMonospace(); in != nil {
		return in
	}
	if bn := p.parseVerbatimStart(); bn != nil {
		return bn.(ast.InlineNode)
	}
	if p.inp.Accept("}}}") {
		return &ast.VerbatimEndNode{}
	}
	if in := p.parseFontSize(); in != nil {
		return in
	}
	if in := p.parseInlineComment(); in != nil {
		return in
	}
	if m := p.match(rePlainText); m != nil {
		return &ast.TextNode{Text: string(m[0])}
	}
	return p.parsePunct()
}

// parseMonospace matches inline literal text. The delimiters must sit on
// the same line, else "{{{" opens a code block instead.
func (p *moinP) parseMonospace() ast.InlineNode {
	m := p.match(reMonospace)
	if m == nil {
		return nil
	}
	return &ast.LiteralNode{Text: string(m[1])}
}

func (p *moinP) parseFontSize() ast.InlineNode {
	if m := p.match(reFontStart); m != nil {
		return &ast.FontSizeNode{Open: true, Larger: m[1][0] == '+'}
	}
	if m := p.match(reFontEnd); m != nil {
		return &ast.FontSizeNode{Open: false, Larger: m[1][0] == '+'}
	}
	return nil
}

// parseInlineComment matches "/* ... */". An unterminated comment runs to
// the end of the line.
func (p *moinP) parseInlineComment() ast.InlineNode {
	if !p.inp.Accept("/*") {
		return nil
	}
	start := p.inp.Pos
	for {
		switch p.inp.Ch {
		case '\n', input.EOS:
			return &ast.CommentInlineNode{Text: string(p.inp.Src[start:p.inp.Pos])}
		case '*':
			end := p.inp.Pos
			p.inp.Next()
			if p.inp.Ch == '/' {
				p.inp.Next()
				return &ast.CommentInlineNode{Text: string(p.inp.Src[start:end])}
			}
		default:
			p.inp.Next()
		}
	}
}

func (p *moinP) parseWikiWord() ast.InlineNode {
	if p.inp.Ch == '!' {
		pos := p.inp.Pos
		p.inp.Next()
		if m := p.match(reWikiWord); m != nil {
			return &ast.WikiWordNode{Word: string(m[0]), Suppressed: true}
		}
		p.inp.SetPos(pos)
		return nil
	}
	if m := p.match(reWikiWord); m != nil {
		return &ast.WikiWordNode{Word: string(m[0])}
	}
	return nil
}

// parsePunct accepts a single punctuation character. A "|" only counts when
// it is not the start of a table cell "||", and a "<" only when it is not
// the start of a macro "<<".
func (p *moinP) parsePunct() ast.InlineNode {
	ch := p.inp.Ch
	if ch == input.EOS || ch == '\n' || input.IsSpace(ch) {
		return nil
	}
	if ch == '|' || ch == '<' {
		pos := p.inp.Pos
		p.inp.Next()
		if p.inp.Ch == ch {
			p.inp.SetPos(pos)
			return nil
		}
		return &ast.TextNode{Text: string(ch)}
	}
	p.inp.Next()
	return &ast.TextNode{Text: string(ch)}
}

// scanQuoted reads a quoted string, returning it with its quotes. The
// closing quote must match the opening one and sit on the same line.
func (p *moinP) scanQuoted() (string, bool) {
	quote := p.inp.Ch
	if quote != '\'' && quote != '"' {
		return "", false
	}
	pos := p.inp.Pos
	p.inp.Next()
	for p.inp.Ch != input.EOS && p.inp.Ch != '\n' {
		if p.inp.Ch == quote && p.inp.Pos > pos+1 {
			p.inp.Next()
			return string(p.inp.Src[pos:p.inp.Pos]), true
		}
		p.inp.Next()
	}
	p.inp.SetPos(pos)
	return "", false
}
