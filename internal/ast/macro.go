package ast

// Macro nodes can occur both as top-level elements and inside lines, so all
// of them implement BlockNode and InlineNode.

// BreakNode is the "<<BR>>" macro, a forced line break.
type BreakNode struct{}

func (*BreakNode) blockNode()           {}
func (*BreakNode) inlineNode()          {}
func (*BreakNode) WalkChildren(Visitor) {}

// TocNode is the "<<TableOfContents>>" macro. MaxDepth is 0 if no depth was
// given. It produces no body output but marks the page for an automatic
// table of contents in the front matter.
type TocNode struct {
	MaxDepth int
}

func (*TocNode) blockNode()           {}
func (*TocNode) inlineNode()          {}
func (*TocNode) WalkChildren(Visitor) {}

// IncludeParam is one named parameter of an include macro. RawValue keeps
// the value with its surrounding quotes.
type IncludeParam struct {
	Name     string
	RawValue string
}

// IncludeNode is the "<<Include(page, name="value", ...)>>" macro.
type IncludeNode struct {
	Page   string
	Anchor string
	Params []IncludeParam
}

func (*IncludeNode) blockNode()           {}
func (*IncludeNode) inlineNode()          {}
func (*IncludeNode) WalkChildren(Visitor) {}

// DivNode is the "<<div(class)>>" macro.
type DivNode struct {
	Class string
}

func (*DivNode) blockNode()           {}
func (*DivNode) inlineNode()          {}
func (*DivNode) WalkChildren(Visitor) {}

// DivEndNode is the "<<div>>" macro that closes a div.
type DivEndNode struct{}

func (*DivEndNode) blockNode()           {}
func (*DivEndNode) inlineNode()          {}
func (*DivEndNode) WalkChildren(Visitor) {}

// SpanNode is the "<<span(class)>>" macro.
type SpanNode struct {
	Class string
}

func (*SpanNode) blockNode()           {}
func (*SpanNode) inlineNode()          {}
func (*SpanNode) WalkChildren(Visitor) {}

// SpanEndNode is the "<<span>>" macro that closes a span.
type SpanEndNode struct{}

func (*SpanEndNode) blockNode()           {}
func (*SpanEndNode) inlineNode()          {}
func (*SpanEndNode) WalkChildren(Visitor) {}

// MailToNode is the "<<MailTo(address, text)>>" macro. Text equals Address
// if no text was given.
type MailToNode struct {
	Address string
	Text    string
}

func (*MailToNode) blockNode()           {}
func (*MailToNode) inlineNode()          {}
func (*MailToNode) WalkChildren(Visitor) {}

// AnchorNode is the "<<Anchor(name)>>" macro.
type AnchorNode struct {
	Name string
}

func (*AnchorNode) blockNode()           {}
func (*AnchorNode) inlineNode()          {}
func (*AnchorNode) WalkChildren(Visitor) {}

// DateNode is the "<<Date(...)>>" or "<<DateTime(...)>>" macro. Timestamp
// keeps the raw argument.
type DateNode struct {
	Timestamp string
}

func (*DateNode) blockNode()           {}
func (*DateNode) inlineNode()          {}
func (*DateNode) WalkChildren(Visitor) {}

// OtherMacroNode is a macro with no translation, e.g. "<<NewPage(...)>>".
// It renders as a placeholder that must be resolved manually.
type OtherMacroNode struct {
	Name string
	Args string
}

func (*OtherMacroNode) blockNode()           {}
func (*OtherMacroNode) inlineNode()          {}
func (*OtherMacroNode) WalkChildren(Visitor) {}

// AttachListNode is the "<<AttachList>>" macro.
type AttachListNode struct{}

func (*AttachListNode) blockNode()           {}
func (*AttachListNode) inlineNode()          {}
func (*AttachListNode) WalkChildren(Visitor) {}
