package ast

// HeadingNode is a section heading, written as "= Title =" with one "=" per
// level on each side.
type HeadingNode struct {
	Level int
	Title string
}

func (*HeadingNode) blockNode() {}
func (*HeadingNode) WalkChildren(Visitor) {}

// ParaNode is a run of inline content on a single line.
type ParaNode struct {
	Inlines InlineSlice
}

func (pn *ParaNode) blockNode() {}
func (pn *ParaNode) WalkChildren(v Visitor) { Walk(v, &pn.Inlines) }

// BlankNode is a line that contains at most trailing whitespace.
type BlankNode struct{}

func (*BlankNode) blockNode() {}
func (*BlankNode) WalkChildren(Visitor) {}

// CommentNode is a full-line comment starting with "##". It produces no
// output.
type CommentNode struct {
	Text string
}

func (*CommentNode) blockNode() {}
func (*CommentNode) WalkChildren(Visitor) {}

// TitleNode is a "<<div(title)>>...<<div>>" region. Its content becomes the
// page title in the front matter and produces no body output.
type TitleNode struct {
	Inlines InlineSlice
}

func (tn *TitleNode) blockNode() {}
func (tn *TitleNode) WalkChildren(v Visitor) { Walk(v, &tn.Inlines) }

// ListNode is a run of indented lines, the first of which carries a bullet
// or number marker.
type ListNode struct {
	Items []*ListItemNode
}

func (ln *ListNode) blockNode() {}
func (ln *ListNode) WalkChildren(v Visitor) {
	for _, item := range ln.Items {
		Walk(v, item)
	}
}

// ListItemNode is one indented line of a list. Lines without a marker are
// continuations or embedded code lines.
type ListItemNode struct {
	Depth   int    // number of leading spaces in the source
	Marker  string // "*", "1.", ...; empty for continuation lines
	Inlines InlineSlice
}

func (in *ListItemNode) WalkChildren(v Visitor) { Walk(v, &in.Inlines) }

// TableNode is a run of "||"-delimited rows.
type TableNode struct {
	Rows []*TableRowNode
}

func (tn *TableNode) blockNode() {}
func (tn *TableNode) WalkChildren(v Visitor) {
	for _, row := range tn.Rows {
		Walk(v, row)
	}
}

// TableRowNode is one table row. Class and Style keep the raw quoted values
// of "rowclass=" and "rowstyle=" from the first cell's format block.
type TableRowNode struct {
	Class string
	Style string
	Cells []*TableCellNode
}

func (rn *TableRowNode) WalkChildren(v Visitor) {
	for _, cell := range rn.Cells {
		Walk(v, cell)
	}
}

// TableCellNode is one table cell. Class keeps the raw quoted value of a
// "class=" entry of the cell's format block.
type TableCellNode struct {
	Class   string
	Format  []CellFormat
	Inlines InlineSlice
}

func (cn *TableCellNode) WalkChildren(v Visitor) { Walk(v, &cn.Inlines) }

// CellFormatKind specifies the kind of a cell format item.
type CellFormatKind int

// Supported cell format items.
const (
	CellColSpan CellFormatKind = iota
	CellRowSpan
	CellLeft
	CellRight
	CellCenter
	CellTop
	CellBottom
	CellStyle
	CellBgColor
	CellWidth
)

// CellFormat is one format item of a cell format block, e.g. "-2" or
// 'style="border: none"'. Value is empty for alignment items.
type CellFormat struct {
	Kind  CellFormatKind
	Value string
}
