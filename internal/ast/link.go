package ast

// WikiWordNode is a CamelCase word that links to a wiki page of the same
// name. A suppressed word (prefixed with "!") renders as plain text.
type WikiWordNode struct {
	Word       string
	Suppressed bool
}

func (*WikiWordNode) inlineNode()          {}
func (*WikiWordNode) WalkChildren(Visitor) {}

// InternalLinkNode is a "[[page#anchor|text]]" link to another wiki page.
// Page and Anchor keep the raw path parts; Text is empty if no link text
// was given.
type InternalLinkNode struct {
	Page   string
	Anchor string
	Text   string
}

func (*InternalLinkNode) inlineNode()          {}
func (*InternalLinkNode) WalkChildren(Visitor) {}

// ExternalLinkNode is a "[[protocol://...|text]]" link. The link text may be
// an embedded image instead of plain text.
type ExternalLinkNode struct {
	URL   string
	Image *ImageNode
	Text  string
}

func (eln *ExternalLinkNode) inlineNode() {}
func (eln *ExternalLinkNode) WalkChildren(v Visitor) {
	if eln.Image != nil {
		Walk(v, eln.Image)
	}
}

// DirectLinkNode is a bare URL written directly into the text.
type DirectLinkNode struct {
	URL string
}

func (*DirectLinkNode) inlineNode()          {}
func (*DirectLinkNode) WalkChildren(Visitor) {}

// InterwikiLinkNode is a "[[prefix:page|text]]" link into another wiki.
// The prefix is resolved against the interwiki map when rendering.
type InterwikiLinkNode struct {
	Prefix string
	Page   string
	Text   string
}

func (*InterwikiLinkNode) inlineNode()          {}
func (*InterwikiLinkNode) WalkChildren(Visitor) {}

// AttachmentLinkNode is a "[[attachment:path|display]]" link to a file
// attached to a wiki page. IsImage tells whether path names an image file.
// The display part may itself be an embedded image.
type AttachmentLinkNode struct {
	Path    string
	Anchor  string
	IsImage bool
	Image   *ImageNode
	Text    string
}

func (aln *AttachmentLinkNode) inlineNode() {}
func (aln *AttachmentLinkNode) WalkChildren(v Visitor) {
	if aln.Image != nil {
		Walk(v, aln.Image)
	}
}

// ImageLinkNode is a "[[target|{{image}}|...]]" link whose display is an
// image. Internal selects between a wiki page target (Page, Anchor) and an
// external URL target.
type ImageLinkNode struct {
	URL      string
	Page     string
	Anchor   string
	Internal bool
	Image    *ImageNode
}

func (iln *ImageLinkNode) inlineNode() {}
func (iln *ImageLinkNode) WalkChildren(v Visitor) {
	if iln.Image != nil {
		Walk(v, iln.Image)
	}
}

// ImageNode is an embedded image: "{{attachment:path|alt|size}}" for an
// attached image, "{{protocol://...|alt|size}}" for an external one. HasAlt
// and HasSize record whether the clauses were present, even if empty.
type ImageNode struct {
	Attachment bool
	Ref        string
	Alt        string
	Size       string
	HasAlt     bool
	HasSize    bool
}

func (*ImageNode) inlineNode()          {}
func (*ImageNode) WalkChildren(Visitor) {}
