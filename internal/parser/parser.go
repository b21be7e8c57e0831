// Package parser reads MoinMoin wiki markup and produces an abstract syntax
// tree of the page.
package parser

import (
	"errors"
	"fmt"
	"regexp"

	"t73f.de/r/zsx/input"

	"moinmd.de/m/internal/ast"
)

// Errors signalled by processing instructions at the top of a page. Pages
// with these instructions have no useful content and are not translated.
var (
	ErrCreole   = errors.New("creole markup is not supported")
	ErrRedirect = errors.New("page is a redirect")
	ErrRefresh  = errors.New("page uses the refresh instruction")
)

// ParseError is returned when no rule matches the remaining input.
type ParseError struct {
	Pos int
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("no rule matches at offset %d", err.Pos)
}

// Parse prepares the source and parses it as a full wiki page.
func Parse(src []byte) (*ast.Document, error) {
	return ParseDocument(input.NewInput(Prepare(src)))
}

// ParseDocument parses a prepared wiki page. The input must already contain
// the indent markers produced by Prepare.
func ParseDocument(inp *input.Input) (*ast.Document, error) {
	p := moinP{inp: inp}
	return p.parseDocument()
}

type moinP struct {
	inp *input.Input
}

// match applies an anchored regular expression at the current position and
// consumes the matched text.
func (p *moinP) match(re *regexp.Regexp) [][]byte {
	m := re.FindSubmatch(p.inp.Src[p.inp.Pos:])
	if m == nil {
		return nil
	}
	p.inp.SetPos(p.inp.Pos + len(m[0]))
	return m
}

// matches tests an anchored regular expression without consuming anything.
func (p *moinP) matches(re *regexp.Regexp) bool {
	return re.Match(p.inp.Src[p.inp.Pos:])
}

// skipSpace consumes whitespace, including line endings.
func (p *moinP) skipSpace() {
	for input.IsSpace(p.inp.Ch) || p.inp.Ch == '\n' || p.inp.Ch == '\r' {
		p.inp.Next()
	}
}

var (
	reLanguagePI = regexp.MustCompile(`^#language en[ \t\f\v]*\n`)
	reFormatPI   = regexp.MustCompile(`^#format (wiki|text/creole)[ \t\f\v]*\n`)
	reRedirectPI = regexp.MustCompile(`^(?i:#redirect) `)
	reRefreshPI  = regexp.MustCompile(`^#refresh `)
	rePragmaPI   = regexp.MustCompile(`^#pragma [^\n]*\n`)
)

func (p *moinP) parseDocument() (*ast.Document, error) {
	doc := &ast.Document{}
	for {
		if bn := p.parseComment(); bn != nil {
			doc.Blocks = append(doc.Blocks, bn)
			continue
		}
		found, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
	}
	for p.inp.Ch != input.EOS {
		bn := p.parseBlock()
		if bn == nil {
			return nil, &ParseError{Pos: p.inp.Pos}
		}
		doc.Blocks = append(doc.Blocks, bn)
	}
	cleanDocument(doc)
	return doc, nil
}

// parseInstruction handles the processing instructions that may occur before
// the page content. Redirect, refresh, and creole format instructions stop
// the translation.
func (p *moinP) parseInstruction() (bool, error) {
	if p.match(reLanguagePI) != nil {
		return true, nil
	}
	if m := p.match(reFormatPI); m != nil {
		if string(m[1]) == "text/creole" {
			return false, ErrCreole
		}
		return true, nil
	}
	if p.matches(reRedirectPI) {
		return false, ErrRedirect
	}
	if p.matches(reRefreshPI) {
		return false, ErrRefresh
	}
	if p.match(rePragmaPI) != nil {
		return true, nil
	}
	return false, nil
}
