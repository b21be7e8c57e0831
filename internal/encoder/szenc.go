package encoder

// szenc encodes the abstract syntax tree as a s-expression. It is mostly
// useful to inspect the parse result of a page.

import (
	"io"

	"t73f.de/r/sx"

	"moinmd.de/m/internal/ast"
)

type szEncoder struct{}

// WriteDocument writes the document as a s-expression to the writer.
func (enc *szEncoder) WriteDocument(w io.Writer, doc *ast.Document) error {
	var lb sx.ListBuilder
	lb.Add(symDocument)
	for _, bn := range doc.Blocks {
		lb.Add(getBlockSz(bn))
	}
	b := newEncWriter(w)
	if _, err := lb.List().Print(&b); err != nil {
		return err
	}
	b.WriteLn()
	return b.Flush()
}

var (
	symDocument   = sx.MakeSymbol("DOCUMENT")
	symHeading    = sx.MakeSymbol("HEADING")
	symPara       = sx.MakeSymbol("PARA")
	symBlank      = sx.MakeSymbol("BLANK")
	symComment    = sx.MakeSymbol("COMMENT")
	symTitle      = sx.MakeSymbol("TITLE")
	symList       = sx.MakeSymbol("LIST")
	symItem       = sx.MakeSymbol("ITEM")
	symTable      = sx.MakeSymbol("TABLE")
	symRow        = sx.MakeSymbol("ROW")
	symCell       = sx.MakeSymbol("CELL")
	symCellFormat = sx.MakeSymbol("CELL-FORMAT")
	symText       = sx.MakeSymbol("TEXT")
	symIndent     = sx.MakeSymbol("INDENT")
	symFormat     = sx.MakeSymbol("FORMAT")
	symFontSize   = sx.MakeSymbol("FONT-SIZE")
	symSuper      = sx.MakeSymbol("SUPERSCRIPT")
	symStrike     = sx.MakeSymbol("STRIKE")
	symLiteral    = sx.MakeSymbol("LITERAL")
	symVerbStart  = sx.MakeSymbol("VERBATIM-START")
	symVerbEnd    = sx.MakeSymbol("VERBATIM-END")
	symWikiWord   = sx.MakeSymbol("WIKI-WORD")
	symLink       = sx.MakeSymbol("LINK")
	symImage      = sx.MakeSymbol("IMAGE")
	symMacro      = sx.MakeSymbol("MACRO")
	symUnknown    = sx.MakeSymbol("UNKNOWN")
)

var mapFormatKindS = map[ast.FormatKind]*sx.Symbol{
	ast.FormatBold:      sx.MakeSymbol("BOLD"),
	ast.FormatItalic:    sx.MakeSymbol("ITALIC"),
	ast.FormatUnderline: sx.MakeSymbol("UNDERLINE"),
}

var mapCellFormatKindS = map[ast.CellFormatKind]*sx.Symbol{
	ast.CellColSpan: sx.MakeSymbol("COLSPAN"),
	ast.CellRowSpan: sx.MakeSymbol("ROWSPAN"),
	ast.CellLeft:    sx.MakeSymbol("LEFT"),
	ast.CellRight:   sx.MakeSymbol("RIGHT"),
	ast.CellCenter:  sx.MakeSymbol("CENTER"),
	ast.CellTop:     sx.MakeSymbol("TOP"),
	ast.CellBottom:  sx.MakeSymbol("BOTTOM"),
	ast.CellStyle:   sx.MakeSymbol("STYLE"),
	ast.CellBgColor: sx.MakeSymbol("BGCOLOR"),
	ast.CellWidth:   sx.MakeSymbol("WIDTH"),
}

func getBlockSz(bn ast.BlockNode) sx.Object {
	switch n := bn.(type) {
	case *ast.HeadingNode:
		return sx.MakeList(symHeading, sx.Int64(n.Level), sx.MakeString(n.Title))
	case *ast.ParaNode:
		return getInlinesSz(symPara, n.Inlines)
	case *ast.BlankNode:
		return sx.MakeList(symBlank)
	case *ast.CommentNode:
		return sx.MakeList(symComment, sx.MakeString(n.Text))
	case *ast.TitleNode:
		return getInlinesSz(symTitle, n.Inlines)
	case *ast.ListNode:
		var lb sx.ListBuilder
		lb.Add(symList)
		for _, item := range n.Items {
			var ib sx.ListBuilder
			ib.AddN(symItem, sx.Int64(item.Depth), sx.MakeString(item.Marker))
			for _, in := range item.Inlines {
				ib.Add(getInlineSz(in))
			}
			lb.Add(ib.List())
		}
		return lb.List()
	case *ast.TableNode:
		return getTableSz(n)
	}
	if in, ok := bn.(ast.InlineNode); ok {
		return getInlineSz(in)
	}
	return sx.MakeList(symUnknown)
}

func getTableSz(tn *ast.TableNode) sx.Object {
	var lb sx.ListBuilder
	lb.Add(symTable)
	for _, row := range tn.Rows {
		var rb sx.ListBuilder
		rb.AddN(symRow, sx.MakeString(row.Class), sx.MakeString(row.Style))
		for _, cell := range row.Cells {
			var cb sx.ListBuilder
			cb.AddN(symCell, sx.MakeString(cell.Class))
			for _, f := range cell.Format {
				cb.Add(sx.MakeList(
					symCellFormat, mapCellFormatKindS[f.Kind], sx.MakeString(f.Value)))
			}
			for _, in := range cell.Inlines {
				cb.Add(getInlineSz(in))
			}
			rb.Add(cb.List())
		}
		lb.Add(rb.List())
	}
	return lb.List()
}

func getInlinesSz(sym *sx.Symbol, is ast.InlineSlice) sx.Object {
	var lb sx.ListBuilder
	lb.Add(sym)
	for _, in := range is {
		lb.Add(getInlineSz(in))
	}
	return lb.List()
}

func getInlineSz(in ast.InlineNode) sx.Object {
	switch n := in.(type) {
	case *ast.TextNode:
		return sx.MakeList(symText, sx.MakeString(n.Text))
	case *ast.IndentNode:
		return sx.MakeList(symIndent, sx.Int64(n.Depth))
	case *ast.FormatNode:
		return sx.MakeList(symFormat, mapFormatKindS[n.Kind])
	case *ast.FontSizeNode:
		return sx.MakeList(
			symFontSize, sx.MakeBoolean(n.Open), sx.MakeBoolean(n.Larger))
	case *ast.SuperscriptNode:
		return sx.MakeList(symSuper, sx.MakeString(n.Text))
	case *ast.StrikeNode:
		return sx.MakeList(symStrike, sx.MakeString(n.Text))
	case *ast.LiteralNode:
		return sx.MakeList(symLiteral, sx.MakeString(n.Text))
	case *ast.CommentInlineNode:
		return sx.MakeList(symComment, sx.MakeString(n.Text))
	case *ast.VerbatimStartNode:
		return sx.MakeList(symVerbStart, sx.MakeString(n.Lang))
	case *ast.VerbatimEndNode:
		return sx.MakeList(symVerbEnd)
	case *ast.WikiWordNode:
		return sx.MakeList(
			symWikiWord, sx.MakeString(n.Word), sx.MakeBoolean(n.Suppressed))
	case *ast.InternalLinkNode:
		return sx.MakeList(symLink, sx.MakeSymbol("INTERNAL"),
			sx.MakeString(n.Page), sx.MakeString(n.Anchor), sx.MakeString(n.Text))
	case *ast.ExternalLinkNode:
		return sx.MakeList(symLink, sx.MakeSymbol("EXTERNAL"),
			sx.MakeString(n.URL), getOptImageSz(n.Image), sx.MakeString(n.Text))
	case *ast.DirectLinkNode:
		return sx.MakeList(symLink, sx.MakeSymbol("DIRECT"), sx.MakeString(n.URL))
	case *ast.InterwikiLinkNode:
		return sx.MakeList(symLink, sx.MakeSymbol("INTERWIKI"),
			sx.MakeString(n.Prefix), sx.MakeString(n.Page), sx.MakeString(n.Text))
	case *ast.AttachmentLinkNode:
		return sx.MakeList(symLink, sx.MakeSymbol("ATTACHMENT"),
			sx.MakeString(n.Path), sx.MakeString(n.Anchor),
			sx.MakeBoolean(n.IsImage), getOptImageSz(n.Image), sx.MakeString(n.Text))
	case *ast.ImageLinkNode:
		target := sx.MakeString(n.URL)
		if n.Internal {
			target = sx.MakeString(n.Page)
		}
		return sx.MakeList(symLink, sx.MakeSymbol("IMAGE"),
			sx.MakeBoolean(n.Internal), target, getOptImageSz(n.Image))
	case *ast.ImageNode:
		return getImageSz(n)
	case *ast.BreakNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("BR"))
	case *ast.TocNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("TOC"), sx.Int64(n.MaxDepth))
	case *ast.IncludeNode:
		var lb sx.ListBuilder
		lb.AddN(symMacro, sx.MakeSymbol("INCLUDE"),
			sx.MakeString(n.Page), sx.MakeString(n.Anchor))
		for _, param := range n.Params {
			lb.Add(sx.MakeList(
				sx.MakeString(param.Name), sx.MakeString(param.RawValue)))
		}
		return lb.List()
	case *ast.DivNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("DIV"), sx.MakeString(n.Class))
	case *ast.DivEndNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("DIV-END"))
	case *ast.SpanNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("SPAN"), sx.MakeString(n.Class))
	case *ast.SpanEndNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("SPAN-END"))
	case *ast.MailToNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("MAIL-TO"),
			sx.MakeString(n.Address), sx.MakeString(n.Text))
	case *ast.AnchorNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("ANCHOR"), sx.MakeString(n.Name))
	case *ast.DateNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("DATE"), sx.MakeString(n.Timestamp))
	case *ast.OtherMacroNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("OTHER"),
			sx.MakeString(n.Name), sx.MakeString(n.Args))
	case *ast.AttachListNode:
		return sx.MakeList(symMacro, sx.MakeSymbol("ATTACH-LIST"))
	}
	return sx.MakeList(symUnknown)
}

func getOptImageSz(img *ast.ImageNode) sx.Object {
	if img == nil {
		return sx.Nil()
	}
	return getImageSz(img)
}

func getImageSz(img *ast.ImageNode) sx.Object {
	return sx.MakeList(symImage, sx.MakeBoolean(img.Attachment),
		sx.MakeString(img.Ref), sx.MakeString(img.Alt), sx.MakeString(img.Size))
}
