package encoder

// Encodes the abstract syntax tree as Github Flavored Markdown or, with the
// html flag set, as HTML. The two forms share most of their logic: some
// constructs have no Markdown notation and fall back to inline HTML even in
// Markdown mode.

import (
	"io"
	"regexp"
	"strings"

	"moinmd.de/m/internal/ast"
	"moinmd.de/m/internal/wiki"
)

// pageEncoder contains all data needed for encoding one page. The flags
// mirror the stateful markup of the wiki: bold, italic, and underline are
// plain toggles in the source, and a code block started in one element may
// end in another.
type pageEncoder struct {
	ctx    *wiki.Context
	matter wiki.FrontMatter
	html   bool

	inBold      bool
	inItalic    bool
	inUnderline bool
	inCodeBlock bool
	depthStack  []int
	indentLevel int
	indentBase  int
	err         error
}

// WriteDocument writes the encoded page to the writer. The first error that
// occurs while encoding is reported after the document is written.
func (pe *pageEncoder) WriteDocument(w io.Writer, doc *ast.Document) error {
	pe.reset()
	b := newEncWriter(w)
	for _, bn := range doc.Blocks {
		b.WriteString(pe.block(bn))
	}
	if pe.err != nil {
		return pe.err
	}
	return b.Flush()
}

// reset restores the toggle state. Pages do not always close their tags, so
// state must not leak into the next document.
func (pe *pageEncoder) reset() {
	pe.inBold, pe.inItalic, pe.inUnderline = false, false, false
	pe.inCodeBlock = false
	pe.depthStack = nil
	pe.indentLevel, pe.indentBase = 0, 0
	pe.err = nil
}

func (pe *pageEncoder) block(bn ast.BlockNode) string {
	switch n := bn.(type) {
	case *ast.HeadingNode:
		return strings.Repeat("#", n.Level) + " " + n.Title + "\n\n"
	case *ast.ParaNode:
		return pe.inlines(n.Inlines, pe.html)
	case *ast.BlankNode:
		return "\n"
	case *ast.CommentNode:
		return ""
	case *ast.TitleNode:
		// Titles pick up a spurious ", " around punctuation. Strip it.
		title := pe.inlines(n.Inlines, false)
		pe.matter["title"] = strings.ReplaceAll(title, ", ", "")
		return ""
	case *ast.ListNode:
		return pe.list(n)
	case *ast.TableNode:
		return pe.table(n)
	}
	if in, isInline := bn.(ast.InlineNode); isInline {
		return pe.inline(in, pe.html)
	}
	return ""
}

func (pe *pageEncoder) inlines(is ast.InlineSlice, html bool) string {
	var sb strings.Builder
	for _, in := range is {
		sb.WriteString(pe.inline(in, html))
	}
	return sb.String()
}

func (pe *pageEncoder) inline(in ast.InlineNode, html bool) string {
	switch n := in.(type) {
	case *ast.TextNode:
		return n.Text
	case *ast.IndentNode:
		return strings.Repeat(" ", n.Depth)
	case *ast.FormatNode:
		return pe.format(n, html)
	case *ast.FontSizeNode:
		return fontSize(n)
	case *ast.SuperscriptNode:
		return "<sup>" + n.Text + "</sup>"
	case *ast.StrikeNode:
		if html {
			return "<s>" + n.Text + "</s>"
		}
		return "~~" + n.Text + "~~"
	case *ast.LiteralNode:
		if html {
			return "<code>" + n.Text + "</code>"
		}
		return "`" + n.Text + "`"
	case *ast.CommentInlineNode:
		return ""
	case *ast.VerbatimStartNode:
		pe.inCodeBlock = true
		if html {
			// There is no way to render the language in a span.
			return `<span class="codespan">`
		}
		return "```" + n.Lang
	case *ast.VerbatimEndNode:
		pe.inCodeBlock = false
		if html {
			return `<\span>`
		}
		return "```\n"
	case *ast.WikiWordNode:
		return pe.wikiWord(n, html)
	case *ast.InternalLinkNode:
		return pe.internalLink(n, html)
	case *ast.ExternalLinkNode:
		return pe.externalLink(n, html)
	case *ast.DirectLinkNode:
		if html {
			return "<a href='" + n.URL + "'>" + n.URL + "</a>"
		}
		return n.URL
	case *ast.InterwikiLinkNode:
		return pe.interwikiLink(n, html)
	case *ast.AttachmentLinkNode:
		return pe.attachmentLink(n, html)
	case *ast.ImageLinkNode:
		return pe.imageLink(n)
	case *ast.ImageNode:
		return pe.image(n, html)
	case *ast.BreakNode:
		return "<br />"
	case *ast.TocNode:
		// The table of contents is generated from the front matter.
		pe.matter["autotoc"] = "true"
		return ""
	case *ast.IncludeNode:
		return pe.include(n)
	case *ast.DivNode:
		return "<div class='" + n.Class + "'>"
	case *ast.DivEndNode:
		return "</div>"
	case *ast.SpanNode:
		return "<div class='" + n.Class + "'>"
	case *ast.SpanEndNode:
		return "</span>"
	case *ast.MailToNode:
		return mailTo(n.Address, n.Text, html)
	case *ast.AnchorNode:
		return `<a name="` + n.Name + `"></a>`
	case *ast.DateNode:
		// Keep just the date part of the timestamp.
		if len(n.Timestamp) > 10 {
			return n.Timestamp[:10]
		}
		return n.Timestamp
	case *ast.OtherMacroNode:
		return "PLACEHOLDER_" + upperSnake(n.Name) + "(" + n.Args + ")"
	case *ast.AttachListNode:
		return "PLACEHOLDER_ATTACH_LIST"
	}
	return ""
}

// format renders a format toggle. Markdown uses the same marker to open and
// close bold and italic; underline has no Markdown notation at all and is
// rendered as HTML in both modes.
func (pe *pageEncoder) format(n *ast.FormatNode, html bool) string {
	switch n.Kind {
	case ast.FormatBold:
		if html {
			pe.inBold = !pe.inBold
			if pe.inBold {
				return "<strong>"
			}
			return "</strong>"
		}
		return "**"
	case ast.FormatItalic:
		if html {
			pe.inItalic = !pe.inItalic
			if pe.inItalic {
				return "<em>"
			}
			return "</em>"
		}
		return "*"
	case ast.FormatUnderline:
		pe.inUnderline = !pe.inUnderline
		if pe.inUnderline {
			return "<u>"
		}
		return "</u>"
	}
	return ""
}

func fontSize(n *ast.FontSizeNode) string {
	if !n.Open {
		return "</span>"
	}
	if n.Larger {
		return `<span style="font-size: larger;">`
	}
	return `<span style="font-size: smaller;">`
}

// pageTarget is the new location of a wiki page, with an optional anchor.
func (pe *pageEncoder) pageTarget(page, anchor string) string {
	target := pe.ctx.PagePath(page) + "/index.md"
	if anchor != "" {
		target += "#" + wiki.Slug(anchor)
	}
	return target
}

func (pe *pageEncoder) wikiWord(n *ast.WikiWordNode, html bool) string {
	if n.Suppressed {
		return n.Word
	}
	target := pe.ctx.PagePath(n.Word) + "/index.md"
	if html {
		return `<a href="` + target + `">` + n.Word + "</a>"
	}
	if pe.inCodeBlock {
		return n.Word
	}
	return "[" + n.Word + "](" + target + ")"
}

// internalLink renders a link to another page of the wiki. Without a link
// text the raw page reference serves as text, since the resolved path would
// show the added path elements.
func (pe *pageEncoder) internalLink(n *ast.InternalLinkNode, html bool) string {
	target := pe.pageTarget(n.Page, n.Anchor)
	if html {
		if n.Text != "" {
			return "<a href='" + target + "'>" + n.Text + "</a>"
		}
		return "<a href='" + n.Page + "'>" + target + "</a>"
	}
	if n.Text != "" {
		return "[" + n.Text + "](" + target + ")"
	}
	return "[" + n.Page + "](" + target + ")"
}

func (pe *pageEncoder) externalLink(n *ast.ExternalLinkNode, html bool) string {
	display := n.Text
	if n.Image != nil {
		display = pe.image(n.Image, false)
	}
	if display == "" {
		display = n.URL
	}
	if html {
		return "<a href='" + n.URL + "'>" + display + "</a>"
	}
	return "[" + display + "](" + n.URL + ")"
}

func (pe *pageEncoder) interwikiLink(n *ast.InterwikiLinkNode, html bool) string {
	if strings.ToLower(n.Prefix) == "mailto" {
		text := n.Text
		if text == "" {
			text = n.Page
		}
		return mailTo(n.Page, text, html)
	}
	url, err := wiki.InterwikiURL(n.Prefix, n.Page)
	if err != nil {
		if pe.err == nil {
			pe.err = err
		}
		return ""
	}
	text := n.Text
	if text == "" {
		text = url
	}
	if html {
		return "<a href='" + url + "'>" + text + "</a>"
	}
	return "[" + text + "](" + url + ")"
}

func mailTo(addr, text string, html bool) string {
	if html {
		return `<a href="mailto:` + addr + `">` + text + "</a>"
	}
	return "(" + text + ")[mailto:" + addr + "]"
}

// attachmentLink renders a link to a file attached to a wiki page. Images
// are stored inside the new page tree; other attachments live outside of it
// and keep a placeholder that must be resolved manually.
func (pe *pageEncoder) attachmentLink(n *ast.AttachmentLinkNode, html bool) string {
	var link, fallback string
	if n.IsImage {
		link = pe.ctx.ImagePath(n.Path)
		fallback = link
	} else {
		fallback = pe.ctx.PagePath(n.Path)
		link = "PLACEHOLDER_ATTACHMENT_URL" + fallback
	}
	if n.Image != nil {
		// An image display always needs an HTML anchor.
		return "<a href='" + link + "'>" + pe.image(n.Image, true) + "</a>"
	}
	text := n.Text
	if html {
		if text == "" {
			text = fallback
		}
		return "<a href='" + link + "'>" + text + "</a>"
	}
	if text == "" {
		text = link
	}
	return "[" + text + "](" + link + ")"
}

// imageLink renders a link whose display is an image. The image may carry
// alt text and a size, so the whole link is rendered as HTML in both modes.
func (pe *pageEncoder) imageLink(n *ast.ImageLinkNode) string {
	target := n.URL
	if n.Internal {
		target = pe.pageTarget(n.Page, n.Anchor)
	}
	return "<a href='" + target + "'>" + pe.image(n.Image, true) + "</a>"
}

// image renders an embedded image. Markdown image notation cannot express a
// size, so a sized image is rendered as an img tag even in Markdown mode.
func (pe *pageEncoder) image(n *ast.ImageNode, html bool) string {
	src := n.Ref
	if n.Attachment {
		src = pe.ctx.ImagePath(n.Ref)
	}
	if html || n.HasSize {
		out := `<img src="` + src + `"`
		if n.HasAlt {
			out += ` alt="` + n.Alt + `"`
		}
		if n.HasSize {
			out += " " + n.Size
		}
		return out + " />"
	}
	alt := ""
	if n.HasAlt {
		alt = n.Alt
	}
	return "![" + alt + "](" + src + ")"
}

func (pe *pageEncoder) include(n *ast.IncludeNode) string {
	out := "PLACEHOLDER_INCLUDE(" + pe.pageTarget(n.Page, n.Anchor)
	for _, param := range n.Params {
		out += param.RawValue
	}
	return out + ")"
}

// list renders a run of indented lines. The wiki indents by arbitrary
// amounts; the depth stack maps each new amount to the next nesting level.
// A code block inside a list keeps the indent of the line that opened it as
// its base, so the code lines stay aligned below their item.
func (pe *pageEncoder) list(ln *ast.ListNode) string {
	var sb strings.Builder
	pe.depthStack = []int{ln.Items[0].Depth}
	for _, item := range ln.Items {
		if pe.inCodeBlock && pe.indentBase == 0 {
			pe.indentBase = pe.indentLevel
		} else if !pe.inCodeBlock && pe.indentBase != 0 {
			pe.indentBase = 0
		}
		pe.indentLevel = pe.trackIndent(item.Depth + pe.indentBase)
		sb.WriteString(strings.Repeat("  ", pe.indentLevel))
		if item.Marker != "" {
			sb.WriteString(item.Marker)
			sb.WriteByte(' ')
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(pe.inlines(item.Inlines, pe.html))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// trackIndent updates the depth stack for an item with the given indent and
// returns its nesting level.
func (pe *pageEncoder) trackIndent(depth int) int {
	stack := pe.depthStack
	if depth > stack[len(stack)-1] {
		stack = append(stack, depth)
	} else if depth < stack[len(stack)-1] {
		stack = stack[:len(stack)-1]
		for len(stack) > 0 && depth < stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 || stack[len(stack)-1] < depth {
			stack = append(stack, depth)
		}
	}
	pe.depthStack = stack
	return len(stack) - 1
}

// table renders a table, as a GFM table when its markup allows, as an HTML
// table otherwise. GFM tables are far easier to edit afterwards, so they are
// preferred whenever possible.
func (pe *pageEncoder) table(tn *ast.TableNode) string {
	if pe.html || tableNeedsHTML(tn) {
		return pe.tableHTML(tn)
	}
	return pe.tableGFM(tn)
}

// tableNeedsHTML reports whether a table uses markup that a GFM table cannot
// express: row or cell styling, spans, or a missing header row.
func tableNeedsHTML(tn *ast.TableNode) bool {
	firstRowIsHeader := false
	for rowIdx, row := range tn.Rows {
		if row.Class != "" {
			if rowIdx == 0 && rowIsHeader(row) {
				firstRowIsHeader = true
			} else {
				return true
			}
		}
		first := row.Cells[0]
		if row.Style != "" || len(first.Format) > 0 {
			return true
		}
		if first.Class != "" && (rowIdx > 0 || !isHeaderClass(first.Class)) {
			return true
		}
		for _, cell := range row.Cells[1:] {
			if cell.Class != "" && (rowIdx > 0 || !isHeaderClass(cell.Class)) {
				return true
			}
			for _, f := range cell.Format {
				if f.Kind == ast.CellStyle {
					return true
				}
			}
		}
	}
	return !firstRowIsHeader
}

func isHeaderClass(class string) bool { return strings.ToLower(class) == "th" }

// rowIsHeader reports whether every cell of the row is a header cell, either
// through the row class or through a class on each single cell.
func rowIsHeader(row *ast.TableRowNode) bool {
	if row.Class != "" {
		return isHeaderClass(unquote(row.Class))
	}
	if isHeaderClass(row.Cells[0].Class) {
		for _, cell := range row.Cells[1:] {
			if !isHeaderClass(cell.Class) {
				return false
			}
		}
		return true
	}
	return false
}

// tableGFM renders a GFM table. The separator line below the header row gets
// dashes matching the width of each header cell, with the three-dash minimum
// GFM requires.
func (pe *pageEncoder) tableGFM(tn *ast.TableNode) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, row := range tn.Rows {
		firstCellText := "| " + pe.inlines(row.Cells[0].Inlines, false)
		sb.WriteString(firstCellText)
		sb.WriteString("| ")
		headerOut := "| " + strings.Repeat("-", max(3, len(firstCellText)-3)) + " | "
		for _, cell := range row.Cells[1:] {
			cellText := " " + pe.inlines(cell.Inlines, false)
			sb.WriteString(cellText)
			sb.WriteString(" | ")
			headerOut += strings.Repeat("-", max(3, len(cellText)-1)) + " | "
		}
		sb.WriteByte('\n')
		if rowIsHeader(row) {
			sb.WriteString(headerOut)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (pe *pageEncoder) tableHTML(tn *ast.TableNode) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	for _, row := range tn.Rows {
		sb.WriteString("  <tr")
		if row.Class != "" {
			sb.WriteString(" class=" + row.Class + " ")
		}
		if row.Style != "" {
			sb.WriteString(" style=" + row.Style + " ")
		}
		sb.WriteString(">\n")
		for _, cell := range row.Cells {
			sb.WriteString(pe.cellHTML(row, cell))
		}
		sb.WriteString("  </tr>\n")
	}
	sb.WriteString("</table>\n\n")
	return sb.String()
}

func (pe *pageEncoder) cellHTML(row *ast.TableRowNode, cell *ast.TableCellNode) string {
	cellType := "td"
	if rowIsHeader(row) || isHeaderClass(cell.Class) {
		cellType = "th"
	}
	cellStyle := ""
	cellAttribs := ""
	if cell.Class != "" && !isHeaderClass(cell.Class) {
		cellStyle += ` class="` + cell.Class + `" `
	}
	for _, f := range cell.Format {
		if text, inStyle := formatItemHTML(f); inStyle {
			cellStyle += " " + text
		} else {
			cellAttribs += " " + text
		}
	}
	if cellStyle != "" {
		cellStyle = ` style="` + cellStyle + `"`
	}
	return "    <" + cellType + cellAttribs + cellStyle + "> " +
		pe.inlines(cell.Inlines, true) + "</" + cellType + ">\n"
}

var reHexColor = regexp.MustCompile(`^[0-9A-Fa-f]{3,6}`)

// formatItemHTML renders one cell format item. The second result tells
// whether the text belongs into the style attribute; span counts stand alone
// as attributes of their own.
func formatItemHTML(f ast.CellFormat) (string, bool) {
	switch f.Kind {
	case ast.CellColSpan:
		return "colspan=" + f.Value, false
	case ast.CellRowSpan:
		return "rowspan=" + f.Value, false
	case ast.CellLeft:
		return "text-align: left;", true
	case ast.CellRight:
		return "text-align: right;", true
	case ast.CellCenter:
		return "text-align: center;", true
	case ast.CellTop:
		return "vertical-align: top;", true
	case ast.CellBottom:
		return "vertical-align: bottom;", true
	case ast.CellStyle:
		s := f.Value
		if s != "" && s[len(s)-1] != ';' {
			s += ";"
		}
		return s, true
	case ast.CellBgColor:
		color := f.Value
		if reHexColor.MatchString(color) {
			color = "#" + color
		}
		return "background-color: " + color + ";", true
	case ast.CellWidth:
		return "width: " + f.Value + ";", true
	}
	return "", false
}

// unquote strips the quotes of a raw quoted value.
func unquote(q string) string {
	if len(q) >= 2 && (q[0] == '\'' || q[0] == '"') {
		return q[1 : len(q)-1]
	}
	return q
}

var reCamelBound1 = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
var reCamelBound2 = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// upperSnake turns a camel case macro name into UPPER_SNAKE_CASE.
func upperSnake(name string) string {
	s := reCamelBound1.ReplaceAllString(name, "${1}_${2}")
	s = reCamelBound2.ReplaceAllString(s, "${1}_${2}")
	return strings.ToUpper(s)
}
