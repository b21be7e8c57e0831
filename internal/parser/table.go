package parser

import (
	"regexp"

	"t73f.de/r/zsx/input"

	"moinmd.de/m/internal/ast"
)

var (
	reColSpan   = regexp.MustCompile(`^-(\d+)`)
	reRowSpan   = regexp.MustCompile(`^\|(\d+)`)
	reBareWidth = regexp.MustCompile(`^\d+(?:%|em|ex|px|cm|mm|in|pt|pc)`)
)

// parseTable parses consecutive "||"-delimited rows.
func (p *moinP) parseTable() ast.BlockNode {
	tn := &ast.TableNode{}
	for {
		row := p.parseTableRow()
		if row == nil {
			break
		}
		tn.Rows = append(tn.Rows, row)
	}
	if len(tn.Rows) == 0 {
		return nil
	}
	return tn
}

func (p *moinP) parseTableRow() *ast.TableRowNode {
	pos := p.inp.Pos
	if !p.inp.Accept("||") {
		return nil
	}
	row := &ast.TableRowNode{}
	first := &ast.TableCellNode{}
	if !p.parseRowFormat(row, first) {
		p.inp.SetPos(pos)
		return nil
	}
	if !p.parseCellContent(first) {
		p.inp.SetPos(pos)
		return nil
	}
	row.Cells = append(row.Cells, first)
	for {
		cell := p.parseTableCell()
		if cell == nil {
			break
		}
		row.Cells = append(row.Cells, cell)
	}
	if p.inp.Ch != '\n' {
		p.inp.SetPos(pos)
		return nil
	}
	p.inp.Next()
	return row
}

func (p *moinP) parseTableCell() *ast.TableCellNode {
	pos := p.inp.Pos
	cell := &ast.TableCellNode{}
	if !p.parseCellFormat(cell) {
		return nil
	}
	if !p.parseCellContent(cell) {
		p.inp.SetPos(pos)
		return nil
	}
	return cell
}

// parseCellContent reads the inline content of a cell up to its closing
// "||". The surrounding blanks belong to the cell separator, not the text.
func (p *moinP) parseCellContent(cell *ast.TableCellNode) bool {
	for p.inp.Ch == ' ' {
		p.inp.Next()
	}
	for {
		in := p.parseInline(true)
		if in == nil {
			break
		}
		cell.Inlines = append(cell.Inlines, in)
	}
	return p.inp.Accept("||")
}

// parseRowFormat reads the "<...>" block after the leading "||" of a row.
// It may mix row attributes and formats of the first cell.
func (p *moinP) parseRowFormat(row *ast.TableRowNode, first *ast.TableCellNode) bool {
	if p.inp.Ch != '<' {
		return true
	}
	pos := p.inp.Pos
	p.inp.Next()
	n := 0
	for {
		if p.inp.Accept("rowstyle=") {
			q, ok := p.scanQuoted()
			if !ok {
				break
			}
			row.Style = q
			n++
			continue
		}
		if p.inp.Accept("rowclass=") {
			q, ok := p.scanQuoted()
			if !ok {
				break
			}
			row.Class = q
			n++
			continue
		}
		if p.inp.Accept("class=") {
			q, ok := p.scanQuoted()
			if !ok {
				break
			}
			first.Class = unquote(q)
			n++
			continue
		}
		if p.parseCellFormatItem(first) {
			n++
			continue
		}
		if p.inp.Ch == ' ' {
			p.inp.Next()
			n++
			continue
		}
		break
	}
	if n == 0 || !p.inp.Accept(">") {
		p.inp.SetPos(pos)
		return true
	}
	return true
}

// parseCellFormat reads the "<...>" block of a regular cell.
func (p *moinP) parseCellFormat(cell *ast.TableCellNode) bool {
	if p.inp.Ch != '<' {
		return true
	}
	pos := p.inp.Pos
	p.inp.Next()
	n := 0
	for {
		if p.inp.Accept("class=") {
			q, ok := p.scanQuoted()
			if !ok {
				break
			}
			cell.Class = unquote(q)
			n++
			continue
		}
		if p.parseCellFormatItem(cell) {
			n++
			continue
		}
		if input.IsSpace(p.inp.Ch) {
			p.inp.Next()
			n++
			continue
		}
		break
	}
	if n == 0 || !p.inp.Accept(">") {
		p.inp.SetPos(pos)
		return true
	}
	return true
}

// parseCellFormatItem reads one cell format: span counts, alignments,
// style, background color, or width. A bare quoted string is a width.
func (p *moinP) parseCellFormatItem(cell *ast.TableCellNode) bool {
	if m := p.match(reColSpan); m != nil {
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellColSpan, Value: string(m[1])})
		return true
	}
	if m := p.match(reRowSpan); m != nil {
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellRowSpan, Value: string(m[1])})
		return true
	}
	switch p.inp.Ch {
	case '(':
		p.inp.Next()
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellLeft})
		return true
	case ')':
		p.inp.Next()
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellRight})
		return true
	case ':':
		p.inp.Next()
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellCenter})
		return true
	case '^':
		p.inp.Next()
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellTop})
		return true
	case 'v':
		p.inp.Next()
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellBottom})
		return true
	}
	if p.inp.Accept("style=") {
		if q, ok := p.scanQuoted(); ok {
			cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellStyle, Value: unquote(q)})
			return true
		}
		return false
	}
	if p.inp.Accept("bgcolor=") {
		if q, ok := p.scanQuoted(); ok {
			cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellBgColor, Value: unquote(q)})
			return true
		}
		return false
	}
	if p.inp.Ch == '#' {
		pos := p.inp.Pos
		p.inp.Next()
		if m := p.match(rePlainText); m != nil {
			cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellBgColor, Value: string(m[0])})
			return true
		}
		p.inp.SetPos(pos)
		return false
	}
	pos := p.inp.Pos
	p.inp.Accept("width=")
	if q, ok := p.scanQuoted(); ok {
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellWidth, Value: unquote(q)})
		return true
	}
	p.inp.SetPos(pos)
	if m := p.match(reBareWidth); m != nil {
		cell.Format = append(cell.Format, ast.CellFormat{Kind: ast.CellWidth, Value: string(m[0])})
		return true
	}
	return false
}

// unquote strips the surrounding quotes that scanQuoted kept.
func unquote(q string) string {
	if len(q) >= 2 {
		return q[1 : len(q)-1]
	}
	return q
}
