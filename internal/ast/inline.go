package ast

// TextNode is a run of plain text or a single punctuation character.
type TextNode struct {
	Text string
}

func (*TextNode) inlineNode()          {}
func (*TextNode) WalkChildren(Visitor) {}

// IndentNode is an indent marker for a line that started with spaces.
type IndentNode struct {
	Depth int
}

func (*IndentNode) inlineNode()          {}
func (*IndentNode) WalkChildren(Visitor) {}

// FormatKind specifies the format that is toggled by a FormatNode.
type FormatKind int

// Supported format kinds.
const (
	FormatBold      FormatKind = iota // '''
	FormatItalic                      // ''
	FormatUnderline                   // __
)

// FormatNode is a stateless format toggle. The wiki markup does not bracket
// bold or italic runs, it just flips them on and off.
type FormatNode struct {
	Kind FormatKind
}

func (*FormatNode) inlineNode()          {}
func (*FormatNode) WalkChildren(Visitor) {}

// FontSizeNode changes the font size. Open is true for "~+" / "~-", false
// for the closing "+~" / "-~". Like the verbatim markers it can stand on
// its own line, so it is also a block node.
type FontSizeNode struct {
	Open   bool
	Larger bool
}

func (*FontSizeNode) blockNode()           {}
func (*FontSizeNode) inlineNode()          {}
func (*FontSizeNode) WalkChildren(Visitor) {}

// SuperscriptNode is text between two "^" characters.
type SuperscriptNode struct {
	Text string
}

func (*SuperscriptNode) inlineNode()          {}
func (*SuperscriptNode) WalkChildren(Visitor) {}

// StrikeNode is text between "--(" and ")--".
type StrikeNode struct {
	Text string
}

func (*StrikeNode) inlineNode()          {}
func (*StrikeNode) WalkChildren(Visitor) {}

// LiteralNode is inline monospace text, between "{{{" and "}}}" or between
// backticks.
type LiteralNode struct {
	Text string
}

func (*LiteralNode) inlineNode()          {}
func (*LiteralNode) WalkChildren(Visitor) {}

// CommentInlineNode is a "/* ... */" comment. It produces no output.
type CommentInlineNode struct {
	Text string
}

func (*CommentInlineNode) inlineNode()          {}
func (*CommentInlineNode) WalkChildren(Visitor) {}

// VerbatimStartNode opens a code block. It can occur at block level and
// inside lines; it flips the rendering into code mode.
type VerbatimStartNode struct {
	Lang string
}

func (*VerbatimStartNode) blockNode()           {}
func (*VerbatimStartNode) inlineNode()          {}
func (*VerbatimStartNode) WalkChildren(Visitor) {}

// VerbatimEndNode closes a code block.
type VerbatimEndNode struct{}

func (*VerbatimEndNode) blockNode()           {}
func (*VerbatimEndNode) inlineNode()          {}
func (*VerbatimEndNode) WalkChildren(Visitor) {}
