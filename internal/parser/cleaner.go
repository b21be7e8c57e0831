package parser

import "moinmd.de/m/internal/ast"

// cleanDocument normalizes the parse result. The tokenizer emits a text node
// per punctuation character; adjacent text nodes are merged into one.
func cleanDocument(doc *ast.Document) {
	var cv cleanVisitor
	ast.Walk(&cv, doc)
}

type cleanVisitor struct{}

func (cv *cleanVisitor) Visit(node ast.Node) ast.Visitor {
	if is, ok := node.(*ast.InlineSlice); ok {
		mergeTextNodes(is)
	}
	return cv
}

func mergeTextNodes(is *ast.InlineSlice) {
	out := (*is)[:0]
	for _, in := range *is {
		if tn, ok := in.(*ast.TextNode); ok && len(out) > 0 {
			if prev, isText := out[len(out)-1].(*ast.TextNode); isText {
				prev.Text += tn.Text
				continue
			}
		}
		out = append(out, in)
	}
	*is = out
}
