// Package ast provides the abstract syntax tree for parsed MoinMoin wiki
// pages.
package ast

// Node is the interface all nodes have in common.
type Node interface {
	WalkChildren(v Visitor)
}

// BlockNode is a node that can appear as a top-level element of a document.
type BlockNode interface {
	Node
	blockNode()
}

// InlineNode is a node that can appear inside a paragraph, a list item, a
// table cell, or a title.
type InlineNode interface {
	Node
	inlineNode()
}

// BlockSlice is a slice of BlockNodes.
type BlockSlice []BlockNode

// WalkChildren walks the nodes of a block slice.
func (bs *BlockSlice) WalkChildren(v Visitor) {
	for _, bn := range *bs {
		Walk(v, bn)
	}
}

func (*BlockSlice) blockNode() {}

// InlineSlice is a slice of InlineNodes.
type InlineSlice []InlineNode

// WalkChildren walks the nodes of an inline slice.
func (is *InlineSlice) WalkChildren(v Visitor) {
	for _, in := range *is {
		Walk(v, in)
	}
}

func (*InlineSlice) inlineNode() {}

// Document is the parse result of one wiki page.
type Document struct {
	Blocks BlockSlice
}

// WalkChildren walks the blocks of the document.
func (doc *Document) WalkChildren(v Visitor) { Walk(v, &doc.Blocks) }
